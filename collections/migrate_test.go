package collections_test

import (
	"encoding/json"
	"testing"

	"shadequote/adapters"
	"shadequote/collections"
	"shadequote/testhelpers"
)

func readMetadata(t *testing.T, raw string) *adapters.LineMetadata {
	t.Helper()
	if raw == "" || raw == "null" {
		return nil
	}
	var meta adapters.LineMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		t.Fatalf("unmarshal metadata: %v", err)
	}
	return &meta
}

func TestMigrateMultiPanelMetadata_FillsPanels(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "QT-MIG-1")
	line := testhelpers.CreateTestQuoteLine(t, app, quote.Id, map[string]any{
		"product_type": "drapery",
		"width_m":      3.2,
		"height_m":     2.4,
		"qty":          1,
		"variant_id":   "fab1",
	})

	if err := collections.MigrateMultiPanelMetadata(app); err != nil {
		t.Fatalf("MigrateMultiPanelMetadata() error: %v", err)
	}

	updated, err := app.FindRecordById(collections.QuoteLines, line.Id)
	if err != nil {
		t.Fatalf("reload line: %v", err)
	}
	meta := readMetadata(t, updated.GetString("metadata"))
	if meta == nil || len(meta.Panels) != 1 {
		t.Fatalf("expected one synthesized panel, got %+v", meta)
	}
	if meta.Panels[0].WidthM != 3.2 {
		t.Errorf("panel width = %v, want 3.2", meta.Panels[0].WidthM)
	}
	if meta.TotalPanels != 1 {
		t.Errorf("total panels = %d, want 1", meta.TotalPanels)
	}
}

func TestMigrateMultiPanelMetadata_KeepsExistingPanels(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "QT-MIG-2")
	line := testhelpers.CreateTestQuoteLine(t, app, quote.Id, map[string]any{
		"product_type": "window-film",
		"width_m":      2.0,
		"height_m":     1.0,
		"qty":          1,
		"metadata": map[string]any{
			"panels":      []map[string]any{{"widthM": 1.2}, {"widthM": 0.8}},
			"totalPanels": 2,
		},
	})

	if err := collections.MigrateMultiPanelMetadata(app); err != nil {
		t.Fatalf("MigrateMultiPanelMetadata() error: %v", err)
	}

	updated, _ := app.FindRecordById(collections.QuoteLines, line.Id)
	meta := readMetadata(t, updated.GetString("metadata"))
	if meta == nil || len(meta.Panels) != 2 {
		t.Fatalf("expected the two stored panels, got %+v", meta)
	}
}

func TestMigrateMultiPanelMetadata_IgnoresSingleWidthProducts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "QT-MIG-3")
	line := testhelpers.CreateTestQuoteLine(t, app, quote.Id, map[string]any{
		"product_type": "roller-shade",
		"width_m":      1.5,
		"height_m":     2.0,
		"qty":          1,
	})

	if err := collections.MigrateMultiPanelMetadata(app); err != nil {
		t.Fatalf("MigrateMultiPanelMetadata() error: %v", err)
	}

	updated, _ := app.FindRecordById(collections.QuoteLines, line.Id)
	if meta := readMetadata(t, updated.GetString("metadata")); meta != nil {
		t.Errorf("roller shade line should not gain metadata, got %+v", meta)
	}
}

func TestMigrateMultiPanelMetadata_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "QT-MIG-4")
	line := testhelpers.CreateTestQuoteLine(t, app, quote.Id, map[string]any{
		"product_type": "drapery",
		"width_m":      4.0,
		"height_m":     2.6,
		"qty":          2,
	})

	for i := 0; i < 2; i++ {
		if err := collections.MigrateMultiPanelMetadata(app); err != nil {
			t.Fatalf("run %d error: %v", i+1, err)
		}
	}

	updated, _ := app.FindRecordById(collections.QuoteLines, line.Id)
	meta := readMetadata(t, updated.GetString("metadata"))
	if meta == nil || len(meta.Panels) != 1 {
		t.Fatalf("expected one panel after two runs, got %+v", meta)
	}
}

func TestMigrateMultiPanelMetadata_NoLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.MigrateMultiPanelMetadata(app); err != nil {
		t.Errorf("expected no error on empty collection, got %v", err)
	}
}
