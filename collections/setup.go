package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/bom"
	"shadequote/configurator"
	"shadequote/services"
)

// Collection names shared with the catalog, quotes and handlers packages.
const (
	ProductTypes = "product_types"
	CatalogItems = "catalog_items"
	Quotes       = "quotes"
	QuoteLines   = "quote_lines"
)

var (
	productTypeKeys = selectValues(configurator.ProductTypes)
	measureBases    = selectValues(services.MeasureBases)
)

// selectValues converts a list of string-kinded keys into select field values.
func selectValues[T ~string](keys []T) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

// Setup programmatically creates/ensures the product_types, catalog_items,
// quotes and quote_lines collections exist.
func Setup(app core.App) {
	productTypes := ensureCollection(app, ProductTypes, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "key",
			Required:  true,
			Values:    productTypeKeys,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.AddIndex("idx_product_types_key", true, "key", "")
	})

	ensureCollection(app, CatalogItems, func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "product_type",
			Required:     false,
			CollectionId: productTypes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "organization", Required: false})
		c.Fields.Add(&core.TextField{Name: "sku", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    bom.Categories,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "option", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "measure_basis",
			Required:  true,
			Values:    measureBases,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "roll_width_m", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "uom",
			Required:  true,
			Values:    services.UOMOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.DateField{Name: "deleted_at"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, Quotes, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "organization", Required: false})
		c.Fields.Add(&core.TextField{Name: "reference_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "sent", "accepted", "rejected"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, QuoteLines, func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "position", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "product_type",
			Required:  true,
			Values:    productTypeKeys,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "product_type_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "area", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width_m", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height_m", Required: false})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: false})
		c.Fields.Add(&core.TextField{Name: "collection_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "variant_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "operating_system_drive_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "operating_system_motor_family", Required: false})
		c.Fields.Add(&core.TextField{Name: "operating_system_tube_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "operating_system_control_side", Required: false})
		c.Fields.Add(&core.TextField{Name: "hardware_color", Required: false})
		c.Fields.Add(&core.TextField{Name: "cassette_shape", Required: false})
		c.Fields.Add(&core.BoolField{Name: "side_channel"})
		c.Fields.Add(&core.TextField{Name: "side_channel_type", Required: false})
		c.Fields.Add(&core.JSONField{Name: "accessories"})
		c.Fields.Add(&core.JSONField{Name: "metadata"})
		c.Fields.Add(&core.NumberField{Name: "computed_qty", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "accessories_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "line_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app core.App, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
