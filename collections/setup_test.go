package collections_test

import (
	"slices"
	"testing"

	"shadequote/bom"
	"shadequote/collections"
	"shadequote/services"
	"shadequote/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	collections.ProductTypes,
	collections.CatalogItems,
	collections.Quotes,
	collections.QuoteLines,
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_CatalogItemsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.CatalogItems)

	fields := []string{
		"product_type", "organization", "sku", "name", "category", "option",
		"measure_basis", "roll_width_m", "unit_price", "uom", "active", "deleted_at",
		"created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("catalog_items: missing field %q", f)
		}
	}

	basis, ok := col.Fields.GetByName("measure_basis").(*core.SelectField)
	if !ok {
		t.Fatalf("measure_basis is not a select field")
	}
	want := map[string]bool{"unit": true, "linear_m": true, "area": true, "fabric": true}
	if len(basis.Values) != len(want) {
		t.Errorf("measure_basis values = %v", basis.Values)
	}
	for _, v := range basis.Values {
		if !want[v] {
			t.Errorf("unexpected measure_basis value %q", v)
		}
	}
}

func TestSetup_QuoteLinesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.QuoteLines)

	fields := []string{
		"quote", "position", "product_type", "product_type_id", "area",
		"width_m", "height_m", "qty", "collection_id", "variant_id",
		"operating_system_drive_type", "operating_system_motor_family",
		"operating_system_tube_type", "operating_system_control_side",
		"hardware_color", "cassette_shape", "side_channel", "side_channel_type",
		"accessories", "metadata",
		"computed_qty", "unit_price", "accessories_total", "line_total",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quote_lines: missing field %q", f)
		}
	}

	for _, f := range []string{"accessories", "metadata"} {
		if _, ok := col.Fields.GetByName(f).(*core.JSONField); !ok {
			t.Errorf("quote_lines.%s should be a JSON field", f)
		}
	}
}

func TestSetup_QuoteLinesRelation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotesCol, _ := app.FindCollectionByNameOrId(collections.Quotes)
	linesCol, _ := app.FindCollectionByNameOrId(collections.QuoteLines)

	rel, ok := linesCol.Fields.GetByName("quote").(*core.RelationField)
	if !ok {
		t.Fatalf("quote_lines.quote is not a relation field")
	}
	if rel.CollectionId != quotesCol.Id {
		t.Errorf("quote relation points at %q, want %q", rel.CollectionId, quotesCol.Id)
	}
	if !rel.CascadeDelete {
		t.Error("expected quote lines to be deleted with their quote")
	}
}

func TestSetup_QuoteDeleteCascades(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "QT-CASCADE")
	line := testhelpers.CreateTestQuoteLine(t, app, quote.Id, map[string]any{
		"product_type": "roller-shade",
		"qty":          1,
	})

	if err := app.Delete(quote); err != nil {
		t.Fatalf("delete quote: %v", err)
	}
	if _, err := app.FindRecordById(collections.QuoteLines, line.Id); err == nil {
		t.Error("expected quote line to be deleted with its quote")
	}
}

func TestSetup_ProductTypeKeyUnique(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProductType(t, app, "awning", "Awning")

	col, _ := app.FindCollectionByNameOrId(collections.ProductTypes)
	dup := core.NewRecord(col)
	dup.Set("key", "awning")
	dup.Set("name", "Awning again")
	if err := app.Save(dup); err == nil {
		t.Error("expected duplicate product type key to be rejected")
	}
}

func TestSetup_SelectValuesFollowDomainLists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		collection string
		field      string
		want       []string
	}{
		{collections.ProductTypes, "key", []string{"roller-shade", "dual-shade", "triple-shade", "drapery", "awning", "window-film"}},
		{collections.QuoteLines, "product_type", []string{"roller-shade", "dual-shade", "triple-shade", "drapery", "awning", "window-film"}},
		{collections.CatalogItems, "category", bom.Categories},
		{collections.CatalogItems, "uom", services.UOMOptions},
	}
	for _, tt := range tests {
		col, err := app.FindCollectionByNameOrId(tt.collection)
		if err != nil {
			t.Fatalf("find %s: %v", tt.collection, err)
		}
		sel, ok := col.Fields.GetByName(tt.field).(*core.SelectField)
		if !ok {
			t.Errorf("%s.%s is not a select field", tt.collection, tt.field)
			continue
		}
		if !slices.Equal(sel.Values, tt.want) {
			t.Errorf("%s.%s values = %v, want %v", tt.collection, tt.field, sel.Values, tt.want)
		}
	}
}

func TestSetup_UnknownUOMRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.CatalogItems)

	r := core.NewRecord(col)
	r.Set("sku", "X-1")
	r.Set("name", "Mystery")
	r.Set("category", "accessory")
	r.Set("measure_basis", "unit")
	r.Set("uom", "bushel")
	if err := app.Save(r); err == nil {
		t.Error("expected unknown uom to be rejected")
	}
}
