// Package quotes persists completed configurations as priced quote lines.
package quotes

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/adapters"
	"shadequote/bom"
	"shadequote/collections"
	"shadequote/configurator"
	"shadequote/services"
)

var ErrQuoteNotFound = errors.New("quote not found")

// Sink writes a completed configuration to the quote_lines collection. When
// LineID is set the existing line is updated, otherwise a new one is created.
type Sink struct {
	App      core.App
	Provider bom.CatalogProvider
	QuoteID  string
	LineID   string

	// Saved is the written record after a successful OnComplete.
	Saved *core.Record
}

var _ configurator.CompletionSink = (*Sink)(nil)

func (s *Sink) OnComplete(ctx context.Context, cfg configurator.ProductConfig) error {
	if _, err := s.App.FindRecordById(collections.Quotes, s.QuoteID); err != nil {
		return fmt.Errorf("%w: %s", ErrQuoteNotFound, s.QuoteID)
	}

	line, err := adapters.LineFromConfig(cfg)
	if err != nil {
		return err
	}
	line.QuoteID = s.QuoteID
	if err := adapters.ValidateLine(line); err != nil {
		return err
	}

	price, err := PriceLine(ctx, s.Provider, cfg)
	if err != nil {
		return err
	}

	record, err := s.targetRecord()
	if err != nil {
		return err
	}
	adapters.ApplyLine(record, line)
	record.Set("computed_qty", price.ComputedQty)
	record.Set("unit_price", price.UnitPrice)
	record.Set("accessories_total", price.AccessoriesTotal)
	record.Set("line_total", price.LineTotal)

	if err := s.App.Save(record); err != nil {
		log.Printf("quotes: OnComplete: save quote line for quote %s: %v", s.QuoteID, err)
		return fmt.Errorf("save quote line: %w", err)
	}
	s.Saved = record
	return nil
}

func (s *Sink) targetRecord() (*core.Record, error) {
	if s.LineID != "" {
		record, err := s.App.FindRecordById(collections.QuoteLines, s.LineID)
		if err != nil {
			return nil, fmt.Errorf("quote line %s: %w", s.LineID, err)
		}
		if record.GetString("quote") != s.QuoteID {
			return nil, fmt.Errorf("quote line %s does not belong to quote %s", s.LineID, s.QuoteID)
		}
		return record, nil
	}
	col, err := s.App.FindCollectionByNameOrId(collections.QuoteLines)
	if err != nil {
		return nil, fmt.Errorf("could not find quote_lines collection: %w", err)
	}
	return core.NewRecord(col), nil
}

// LinePrice is the priced summary of one quote line.
type LinePrice struct {
	ComputedQty      float64
	UnitPrice        float64
	AccessoriesTotal float64
	LineTotal        float64
}

// PriceLine prices a configuration by its primary fabric item. The computed
// quantity follows the item's own measure basis.
func PriceLine(ctx context.Context, provider bom.CatalogProvider, cfg configurator.ProductConfig) (LinePrice, error) {
	layer, ok := adapters.PrimaryFabric(cfg)
	if !ok {
		return LinePrice{}, &configurator.UnknownProductTypeError{}
	}
	if !layer.Selected() {
		return LinePrice{}, &bom.MissingCatalogItemError{Source: bom.SourceFabric}
	}
	item, err := provider.FindItemByID(ctx, layer.VariantID)
	if err != nil {
		return LinePrice{}, &bom.CatalogLookupError{Op: "find item", Ref: layer.VariantID, Err: err}
	}
	if item == nil {
		return LinePrice{}, &bom.MissingCatalogItemError{Source: bom.SourceFabric, Ref: layer.VariantID}
	}

	widthM, heightM, drops := dimensions(cfg)
	computed, err := services.ComputeComputedQty(item.MeasureBasis, drops,
		services.Dim(widthM), services.Dim(heightM), item.RollWidthM)
	if err != nil {
		return LinePrice{}, err
	}
	computed = services.RoundQty(computed)

	accessories := configurator.AccessoriesOf(cfg)
	forTotals := make([]services.AccessoryForTotals, 0, len(accessories))
	for _, a := range accessories {
		forTotals = append(forTotals, services.AccessoryForTotals{UnitPrice: a.UnitPrice, Qty: a.Qty})
	}
	accTotal := services.CalcAccessoriesTotal(forTotals)

	return LinePrice{
		ComputedQty:      computed,
		UnitPrice:        item.UnitPrice,
		AccessoriesTotal: services.RoundMoney(accTotal),
		LineTotal:        services.RoundMoney(services.CalcLineTotal(item.UnitPrice, computed, accTotal)),
	}, nil
}

// dimensions returns the width, height and number of fabric drops of a
// configuration. Multi-panel products use one drop per panel.
func dimensions(cfg configurator.ProductConfig) (widthM, heightM, drops float64) {
	units := cfg.Base().Units()
	switch c := cfg.(type) {
	case *configurator.RollerShade:
		return c.WidthM, c.HeightM, float64(units)
	case *configurator.DualShade:
		return c.WidthM, c.HeightM, float64(units)
	case *configurator.TripleShade:
		return c.WidthM, c.HeightM, float64(units)
	case *configurator.Awning:
		return c.WidthM, c.HeightM, float64(units)
	case *configurator.Drapery:
		return configurator.TotalWidth(c.Panels), c.HeightM, float64(units * max(1, len(c.Panels)))
	case *configurator.WindowFilm:
		return configurator.TotalWidth(c.Panels), c.HeightM, float64(units * max(1, len(c.Panels)))
	}
	return 0, 0, float64(units)
}
