package collections_test

import (
	"testing"

	"github.com/pocketbase/dbx"

	"shadequote/collections"
	"shadequote/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, "acme"); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	typesCol, _ := app.FindCollectionByNameOrId(collections.ProductTypes)
	types, err := app.FindAllRecords(typesCol)
	if err != nil {
		t.Fatalf("query product_types error: %v", err)
	}
	if len(types) != 6 {
		t.Fatalf("expected 6 product types, got %d", len(types))
	}

	itemsCol, _ := app.FindCollectionByNameOrId(collections.CatalogItems)
	for _, pt := range types {
		items, err := app.FindAllRecords(itemsCol, dbx.HashExp{"product_type": pt.Id})
		if err != nil {
			t.Fatalf("query catalog_items error: %v", err)
		}
		if len(items) == 0 {
			t.Errorf("product type %q has no catalog items", pt.GetString("key"))
		}
		for _, it := range items {
			if it.GetString("organization") != "acme" {
				t.Errorf("item %s organization = %q, want acme", it.GetString("sku"), it.GetString("organization"))
			}
			if !it.GetBool("active") {
				t.Errorf("item %s should be active", it.GetString("sku"))
			}
		}
	}
}

func TestSeed_FabricsCarryRollWidth(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app, ""); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	itemsCol, _ := app.FindCollectionByNameOrId(collections.CatalogItems)
	fabrics, err := app.FindAllRecords(itemsCol, dbx.HashExp{"measure_basis": "fabric"})
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(fabrics) == 0 {
		t.Fatal("expected fabric items")
	}
	for _, f := range fabrics {
		if f.GetFloat("roll_width_m") <= 0 {
			t.Errorf("fabric %s has no roll width", f.GetString("sku"))
		}
	}
}

func TestSeed_RollerShadeHasEveryTube(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app, ""); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	pt, err := app.FindFirstRecordByData(collections.ProductTypes, "key", "roller-shade")
	if err != nil {
		t.Fatalf("roller-shade product type not found: %v", err)
	}
	itemsCol, _ := app.FindCollectionByNameOrId(collections.CatalogItems)
	for _, tube := range []string{"38mm", "45mm", "55mm", "70mm"} {
		items, _ := app.FindAllRecords(itemsCol, dbx.HashExp{
			"product_type": pt.Id,
			"category":     "tube",
			"option":       tube,
		})
		if len(items) != 1 {
			t.Errorf("expected 1 tube item for %s, got %d", tube, len(items))
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, ""); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	itemsCol, _ := app.FindCollectionByNameOrId(collections.CatalogItems)
	first, _ := app.FindAllRecords(itemsCol)

	if err := collections.Seed(app, ""); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	second, _ := app.FindAllRecords(itemsCol)

	if len(first) != len(second) {
		t.Errorf("catalog item count changed: %d -> %d", len(first), len(second))
	}
}

func TestSeed_SkipsWhenProductTypesExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProductType(t, app, "awning", "Existing Awning")

	if err := collections.Seed(app, ""); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	itemsCol, _ := app.FindCollectionByNameOrId(collections.CatalogItems)
	items, _ := app.FindAllRecords(itemsCol)
	if len(items) != 0 {
		t.Errorf("expected no catalog items, got %d", len(items))
	}
}
