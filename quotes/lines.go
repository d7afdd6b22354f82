package quotes

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/adapters"
	"shadequote/collections"
	"shadequote/configurator"
	"shadequote/services"
)

var ErrLineNotFound = errors.New("quote line not found")

// LoadLine reads a quote line and rebuilds its configuration. quoteID may be
// empty to skip the ownership check.
func LoadLine(app core.App, quoteID, lineID string) (*core.Record, configurator.ProductConfig, error) {
	record, err := app.FindRecordById(collections.QuoteLines, lineID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
	}
	if quoteID != "" && record.GetString("quote") != quoteID {
		return nil, nil, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
	}
	line, err := adapters.LineFromRecord(record)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := adapters.ConfigFromLine(line)
	if err != nil {
		return nil, nil, err
	}
	return record, cfg, nil
}

// Totals sums the persisted lines of a quote.
func Totals(app core.App, quoteID string) (services.QuoteTotals, error) {
	if _, err := app.FindRecordById(collections.Quotes, quoteID); err != nil {
		return services.QuoteTotals{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, quoteID)
	}
	records, err := app.FindRecordsByFilter(
		collections.QuoteLines,
		"quote = {:quoteId}",
		"position",
		0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return services.QuoteTotals{}, fmt.Errorf("quote %s lines: %w", quoteID, err)
	}
	lines := make([]services.LineForTotals, 0, len(records))
	for _, r := range records {
		lines = append(lines, services.LineForTotals{
			UnitPrice:        r.GetFloat("unit_price"),
			ComputedQty:      r.GetFloat("computed_qty"),
			AccessoriesTotal: r.GetFloat("accessories_total"),
		})
	}
	totals := services.CalcQuoteTotals(lines)
	totals.ProductTotal = services.RoundMoney(totals.ProductTotal)
	totals.AccessoriesTotal = services.RoundMoney(totals.AccessoriesTotal)
	totals.Total = services.RoundMoney(totals.Total)
	return totals, nil
}
