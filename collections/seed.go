package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type catalogDef struct {
	sku          string
	name         string
	category     string
	option       string
	measureBasis string
	rollWidthM   float64
	unitPrice    float64
	uom          string
}

type productTypeDef struct {
	key   string
	name  string
	items []catalogDef
}

// ── Shared component sets ────────────────────────────────────────────────

func rollerComponents(prefix string) []catalogDef {
	return []catalogDef{
		{prefix + "-TUBE-38", "Aluminium tube 38mm", "tube", "38mm", "linear_m", 0, 310, "m"},
		{prefix + "-TUBE-45", "Aluminium tube 45mm", "tube", "45mm", "linear_m", 0, 360, "m"},
		{prefix + "-TUBE-55", "Aluminium tube 55mm", "tube", "55mm", "linear_m", 0, 420, "m"},
		{prefix + "-TUBE-70", "Aluminium tube 70mm", "tube", "70mm", "linear_m", 0, 540, "m"},
		{prefix + "-CHAIN", "Chain control set", "control", "", "unit", 0, 650, "set"},
		{prefix + "-MTR-SOMFY", "Somfy Sonesse 40 RTS", "motor", "somfy", "unit", 0, 18500, "ea"},
		{prefix + "-MTR-TUYA", "Tuya Wi-Fi tubular motor", "motor", "tuya", "unit", 0, 7400, "ea"},
		{prefix + "-CAS-RND", "Round cassette", "cassette", "round", "linear_m", 0, 980, "m"},
		{prefix + "-CAS-SQR", "Square cassette", "cassette", "square", "linear_m", 0, 1120, "m"},
		{prefix + "-CAS-FSC", "Fascia cassette", "cassette", "fascia", "linear_m", 0, 1350, "m"},
		{prefix + "-SCH-STD", "Side channel standard", "side_channel", "standard", "linear_m", 0, 540, "m"},
		{prefix + "-SCH-BLK", "Side channel blackout", "side_channel", "blackout", "linear_m", 0, 720, "m"},
		{prefix + "-ACC-BRKT", "Extension bracket", "accessory", "", "unit", 0, 240, "ea"},
		{prefix + "-ACC-REMOTE", "5-channel remote", "accessory", "", "unit", 0, 2900, "ea"},
	}
}

func fabrics(prefix string) []catalogDef {
	return []catalogDef{
		{prefix + "-FAB-SCR5", "Screen 5% Charcoal", "fabric", "", "fabric", 2.5, 1450, "m"},
		{prefix + "-FAB-SCR3", "Screen 3% White", "fabric", "", "fabric", 2.5, 1620, "m"},
		{prefix + "-FAB-BO", "Blackout Linen Sand", "fabric", "", "fabric", 2.8, 1890, "m"},
	}
}

var productTypeDefs = []productTypeDef{
	{
		key:   "roller-shade",
		name:  "Roller Shade",
		items: append(fabrics("RS"), rollerComponents("RS")...),
	},
	{
		key:   "dual-shade",
		name:  "Dual Shade",
		items: append(fabrics("DS"), rollerComponents("DS")...),
	},
	{
		key:   "triple-shade",
		name:  "Triple Shade",
		items: append(fabrics("TS"), rollerComponents("TS")...),
	},
	{
		key:  "drapery",
		name: "Drapery",
		items: []catalogDef{
			{"DR-FAB-VEL", "Velvet Ink", "fabric", "", "fabric", 2.8, 2450, "m"},
			{"DR-FAB-SHR", "Sheer Voile Ivory", "fabric", "", "fabric", 3.0, 980, "m"},
			{"DR-LIN-BO", "Blackout lining", "fabric", "", "fabric", 2.8, 640, "m"},
			{"DR-TRK-STD", "Aluminium curtain track", "track", "", "linear_m", 0, 890, "m"},
			{"DR-WAND", "Draw wand", "control", "", "unit", 0, 320, "ea"},
			{"DR-MTR-SOMFY", "Somfy Glydea track motor", "motor", "somfy", "unit", 0, 26500, "ea"},
			{"DR-ACC-TIE", "Tie-back pair", "accessory", "", "unit", 0, 450, "pair"},
		},
	},
	{
		key:  "awning",
		name: "Awning",
		items: []catalogDef{
			{"AW-FAB-ACR", "Acrylic canvas Stripe", "fabric", "", "fabric", 1.2, 2100, "m"},
			{"AW-FRM-STD", "Folding arm frame", "frame", "", "area", 0, 5400, "m2"},
			{"AW-CRANK", "Crank handle", "control", "", "unit", 0, 1250, "ea"},
			{"AW-MTR-SOMFY", "Somfy Sunea motor", "motor", "somfy", "unit", 0, 31500, "ea"},
			{"AW-ACC-WIND", "Wind sensor", "accessory", "", "unit", 0, 6800, "ea"},
		},
	},
	{
		key:  "window-film",
		name: "Window Film",
		items: []catalogDef{
			{"WF-FILM-SOLAR", "Solar control film 35", "film", "", "fabric", 1.52, 1150, "m"},
			{"WF-FILM-FROST", "Frosted privacy film", "film", "", "fabric", 1.52, 890, "m"},
			{"WF-ACC-SQG", "Squeegee kit", "accessory", "", "unit", 0, 180, "ea"},
		},
	},
}

// Seed inserts the product types and a demo catalog. It is safe to call on
// every startup because it returns early if any product type already exists.
func Seed(app core.App, organization string) error {
	// ── idempotency: skip if product types already exist ────────────
	typesCol, err := app.FindCollectionByNameOrId(ProductTypes)
	if err != nil {
		return fmt.Errorf("seed: could not find product_types collection: %w", err)
	}
	existing, err := app.FindAllRecords(typesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query product_types: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: product_types collection is empty – inserting seed data …")

	itemsCol, err := app.FindCollectionByNameOrId(CatalogItems)
	if err != nil {
		return fmt.Errorf("seed: could not find catalog_items collection: %w", err)
	}

	for _, pt := range productTypeDefs {
		tr := core.NewRecord(typesCol)
		tr.Set("key", pt.key)
		tr.Set("name", pt.name)
		tr.Set("active", true)
		if err := app.Save(tr); err != nil {
			return fmt.Errorf("seed: save product type %q: %w", pt.key, err)
		}

		for _, d := range pt.items {
			r := core.NewRecord(itemsCol)
			r.Set("product_type", tr.Id)
			r.Set("organization", organization)
			r.Set("sku", d.sku)
			r.Set("name", d.name)
			r.Set("category", d.category)
			r.Set("option", d.option)
			r.Set("measure_basis", d.measureBasis)
			if d.rollWidthM > 0 {
				r.Set("roll_width_m", d.rollWidthM)
			}
			r.Set("unit_price", d.unitPrice)
			r.Set("uom", d.uom)
			r.Set("active", true)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save catalog item %q: %w", d.sku, err)
			}
		}
	}

	log.Printf("seed: inserted %d product types.\n", len(productTypeDefs))
	return nil
}
