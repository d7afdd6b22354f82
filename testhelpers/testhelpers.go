// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shadequote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProductType creates a product_types record for key and returns it.
func CreateTestProductType(t *testing.T, app core.App, key, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.ProductTypes)
	if err != nil {
		t.Fatalf("failed to find product_types collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("name", name)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product type: %v", err)
	}

	return record
}

// CatalogItemSpec describes a catalog item created by CreateTestCatalogItem.
// Zero values get sensible defaults.
type CatalogItemSpec struct {
	ProductTypeID string
	Organization  string
	SKU           string
	Name          string
	Category      string
	Option        string
	MeasureBasis  string
	RollWidthM    float64
	UnitPrice     float64
	UOM           string
	Inactive      bool
	Deleted       bool
}

// CreateTestCatalogItem creates an active catalog_items record.
func CreateTestCatalogItem(t *testing.T, app core.App, spec CatalogItemSpec) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.CatalogItems)
	if err != nil {
		t.Fatalf("failed to find catalog_items collection: %v", err)
	}

	if spec.Name == "" {
		spec.Name = spec.SKU
	}
	if spec.Category == "" {
		spec.Category = "accessory"
	}
	if spec.MeasureBasis == "" {
		spec.MeasureBasis = "unit"
	}
	if spec.UOM == "" {
		spec.UOM = "ea"
	}

	record := core.NewRecord(col)
	record.Set("product_type", spec.ProductTypeID)
	record.Set("organization", spec.Organization)
	record.Set("sku", spec.SKU)
	record.Set("name", spec.Name)
	record.Set("category", spec.Category)
	record.Set("option", spec.Option)
	record.Set("measure_basis", spec.MeasureBasis)
	if spec.RollWidthM > 0 {
		record.Set("roll_width_m", spec.RollWidthM)
	}
	record.Set("unit_price", spec.UnitPrice)
	record.Set("uom", spec.UOM)
	record.Set("active", !spec.Inactive)
	if spec.Deleted {
		record.Set("deleted_at", "2025-01-01 00:00:00.000Z")
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test catalog item %q: %v", spec.SKU, err)
	}

	return record
}

// CreateTestQuote creates a draft quote and returns it.
func CreateTestQuote(t *testing.T, app core.App, reference string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.Quotes)
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("reference_number", reference)
	record.Set("customer_name", "Test Customer")
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteLine creates a quote_lines record from raw column values.
func CreateTestQuoteLine(t *testing.T, app core.App, quoteID string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.QuoteLines)
	if err != nil {
		t.Fatalf("failed to find quote_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote line: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
