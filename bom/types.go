// Package bom turns a finished product configuration into a priced bill of
// materials.
package bom

import (
	"context"
	"fmt"

	"shadequote/services"
)

// Catalog item categories used to pick hardware components.
const (
	CategoryFabric      = "fabric"
	CategoryFilm        = "film"
	CategoryTube        = "tube"
	CategoryMotor       = "motor"
	CategoryControl     = "control"
	CategoryCassette    = "cassette"
	CategorySideChannel = "side_channel"
	CategoryTrack       = "track"
	CategoryFrame       = "frame"
	CategoryAccessory   = "accessory"
)

// Categories lists every catalog category.
var Categories = []string{
	CategoryFabric, CategoryFilm, CategoryTube, CategoryMotor, CategoryControl,
	CategoryCassette, CategorySideChannel, CategoryTrack, CategoryFrame, CategoryAccessory,
}

// Source tags where a BOM line came from.
type Source string

const (
	SourceFabric      Source = "fabric"
	SourceFrontFabric Source = "front_fabric"
	SourceMidFabric   Source = "middle_fabric"
	SourceBackFabric  Source = "back_fabric"
	SourceLining      Source = "lining"
	SourceFilm        Source = "film"
	SourceTube        Source = "tube"
	SourceMotor       Source = "motor"
	SourceControl     Source = "control"
	SourceCassette    Source = "cassette"
	SourceSideChannel Source = "side_channel"
	SourceTrack       Source = "track"
	SourceFrame       Source = "frame"
	SourceAccessory   Source = "accessory"
)

// CatalogItem is the part of a catalog entry the BOM builders need.
// Option is the configuration value the item fulfils, e.g. a tube type,
// motor family or cassette shape.
type CatalogItem struct {
	ID           string                `json:"id"`
	SKU          string                `json:"sku"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	Option       string                `json:"option,omitempty"`
	MeasureBasis services.MeasureBasis `json:"measureBasis"`
	RollWidthM   *float64              `json:"rollWidthM,omitempty"`
	UnitPrice    float64               `json:"unitPrice"`
	UOM          string                `json:"uom"`
}

// CatalogProvider resolves catalog items. Implementations filter out
// inactive and deleted items and scope lookups to the caller's tenant.
// FindItemByID returns (nil, nil) when the item does not exist.
type CatalogProvider interface {
	FindItemsByType(ctx context.Context, productTypeID string) ([]CatalogItem, error)
	FindItemByID(ctx context.Context, id string) (*CatalogItem, error)
}

// BOMItem is one priced line of a bill of materials.
type BOMItem struct {
	CatalogItemID string  `json:"catalogItemId"`
	SKU           string  `json:"sku,omitempty"`
	Description   string  `json:"description"`
	Qty           float64 `json:"qty"`
	UOM           string  `json:"uom"`
	UnitPrice     float64 `json:"unitPrice"`
	ExtendedPrice float64 `json:"extendedPrice"`
	Source        Source  `json:"source"`
}

// BOMResult is the full bill of materials of one configured line. Total
// equals Subtotal; no taxes or fees are applied here.
type BOMResult struct {
	Items    []BOMItem `json:"items"`
	Subtotal float64   `json:"subtotal"`
	Total    float64   `json:"total"`
}

// CatalogLookupError wraps a provider failure.
type CatalogLookupError struct {
	Op  string
	Ref string
	Err error
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("catalog %s %q: %v", e.Op, e.Ref, e.Err)
}

func (e *CatalogLookupError) Unwrap() error { return e.Err }

// MissingCatalogItemError reports a required component that could not be
// resolved from the catalog.
type MissingCatalogItemError struct {
	Source Source
	Ref    string
}

func (e *MissingCatalogItemError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("no catalog item for required %s", e.Source)
	}
	return fmt.Sprintf("no catalog item %q for required %s", e.Ref, e.Source)
}
