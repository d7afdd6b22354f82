// Package catalog resolves catalog items from the PocketBase store.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"shadequote/bom"
	"shadequote/collections"
	"shadequote/services"
)

// Store reads active, non-deleted catalog items of one organization.
// An empty organization disables tenant scoping.
type Store struct {
	app          core.App
	organization string
}

func NewStore(app core.App, organization string) *Store {
	return &Store{app: app, organization: organization}
}

func (s *Store) scope(exp dbx.HashExp) dbx.HashExp {
	exp["active"] = true
	exp["deleted_at"] = ""
	if s.organization != "" {
		exp["organization"] = s.organization
	}
	return exp
}

// FindItemsByType returns the catalog items of a product type ordered by
// category and SKU.
func (s *Store) FindItemsByType(ctx context.Context, productTypeID string) ([]bom.CatalogItem, error) {
	var records []*core.Record
	err := s.app.RecordQuery(collections.CatalogItems).
		AndWhere(s.scope(dbx.HashExp{"product_type": productTypeID})).
		OrderBy("category ASC", "sku ASC").
		WithContext(ctx).
		All(&records)
	if err != nil {
		return nil, fmt.Errorf("catalog: items of product type %s: %w", productTypeID, err)
	}

	items := make([]bom.CatalogItem, 0, len(records))
	for _, r := range records {
		items = append(items, ItemFromRecord(r))
	}
	return items, nil
}

// FindItemByID returns (nil, nil) when no visible item has the id.
func (s *Store) FindItemByID(ctx context.Context, id string) (*bom.CatalogItem, error) {
	record := &core.Record{}
	err := s.app.RecordQuery(collections.CatalogItems).
		AndWhere(s.scope(dbx.HashExp{"id": id})).
		Limit(1).
		WithContext(ctx).
		One(record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: item %s: %w", id, err)
	}
	item := ItemFromRecord(record)
	return &item, nil
}

// ItemFromRecord maps a catalog_items record.
func ItemFromRecord(r *core.Record) bom.CatalogItem {
	return bom.CatalogItem{
		ID:           r.Id,
		SKU:          r.GetString("sku"),
		Name:         r.GetString("name"),
		Category:     r.GetString("category"),
		Option:       r.GetString("option"),
		MeasureBasis: services.MeasureBasis(r.GetString("measure_basis")),
		RollWidthM:   services.Dim(r.GetFloat("roll_width_m")),
		UnitPrice:    r.GetFloat("unit_price"),
		UOM:          r.GetString("uom"),
	}
}
