package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/collections"
	"shadequote/configurator"
	"shadequote/quotes"
	"shadequote/services"
)

// loadLineFromPath loads the line named by the {quoteId} and {lineId} path
// values.
func loadLineFromPath(d *Deps, e *core.RequestEvent) (*core.Record, configurator.ProductConfig, error) {
	quoteID := e.Request.PathValue("quoteId")
	lineID := e.Request.PathValue("lineId")
	if lineID == "" {
		return nil, nil, &badRequestError{msg: "missing line id"}
	}
	return quotes.LoadLine(d.App, quoteID, lineID)
}

// buildBOMExport prices a stored line and flattens its BOM into export rows.
func buildBOMExport(ctx context.Context, d *Deps, line *core.Record, cfg configurator.ProductConfig) (services.BOMExport, error) {
	result, err := d.buildBOM(ctx, cfg)
	if err != nil {
		return services.BOMExport{}, err
	}

	var reference string
	if quote, err := d.App.FindRecordById(collections.Quotes, line.GetString("quote")); err == nil {
		reference = quote.GetString("reference_number")
	} else {
		log.Printf("export: quote for line %s: %v", line.Id, err)
	}

	rows := make([]services.BOMExportRow, 0, len(result.Items))
	for i, item := range result.Items {
		rows = append(rows, services.BOMExportRow{
			Index:         fmt.Sprintf("%d", i+1),
			SKU:           item.SKU,
			Description:   item.Description,
			Source:        string(item.Source),
			Qty:           item.Qty,
			UOM:           item.UOM,
			UnitPrice:     item.UnitPrice,
			ExtendedPrice: item.ExtendedPrice,
		})
	}

	createdDate := "-"
	if dt := line.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	base := cfg.Base()
	title := base.ProductType.String()
	if def, err := d.Registry.Get(base.ProductType); err == nil {
		title = def.Name
	}

	return services.BOMExport{
		Title:           title,
		ReferenceNumber: reference,
		CreatedDate:     createdDate,
		ProductType:     string(base.ProductType),
		Area:            base.Area,
		Currency:        d.currency(),
		Rows:            rows,
		Subtotal:        result.Subtotal,
		Total:           result.Total,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleLineExportExcel returns a handler that generates and downloads the
// BOM of a quote line as an Excel file.
func HandleLineExportExcel(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		line, cfg, err := loadLineFromPath(d, e)
		if err != nil {
			return respondError(e, err)
		}

		data, err := buildBOMExport(e.Request.Context(), d, line, cfg)
		if err != nil {
			return respondError(e, err)
		}

		xlsxBytes, err := services.GenerateBOMExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		name := data.ReferenceNumber
		if name == "" {
			name = line.Id
		}
		filename := fmt.Sprintf("BOM_%s_%d_%d.xlsx", sanitizeFilename(name), line.GetInt("position"), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
