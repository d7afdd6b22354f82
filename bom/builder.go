package bom

import (
	"context"
	"strings"

	"shadequote/configurator"
	"shadequote/services"
)

// lineBuilder accumulates BOM lines for one configuration. Catalog items of
// the product type are loaded at most once per build.
type lineBuilder struct {
	ctx           context.Context
	provider      CatalogProvider
	productTypeID string

	typeItems []CatalogItem
	loaded    bool
	items     []BOMItem
}

func newLineBuilder(ctx context.Context, provider CatalogProvider, common *configurator.Common) *lineBuilder {
	return &lineBuilder{ctx: ctx, provider: provider, productTypeID: common.ProductTypeID}
}

// fabric adds the consumption line of one fabric layer using the fabric
// measure basis. The layer's variant must resolve to a catalog item.
func (b *lineBuilder) fabric(layer configurator.FabricLayer, source Source, widthM, heightM, qty float64) error {
	if !layer.Selected() {
		return &MissingCatalogItemError{Source: source}
	}
	item, err := b.lookup(layer.VariantID)
	if err != nil {
		return err
	}
	if item == nil {
		return &MissingCatalogItemError{Source: source, Ref: layer.VariantID}
	}
	computed, err := services.ComputeComputedQty(services.BasisFabric, qty,
		services.Dim(widthM), services.Dim(heightM), item.RollWidthM)
	if err != nil {
		return err
	}
	b.add(*item, computed, source)
	return nil
}

// component adds a hardware line picked by category and option. Optional
// components that are not in the catalog are skipped; required ones fail
// the build.
func (b *lineBuilder) component(category, option string, required bool, source Source, qty, widthM, heightM float64) error {
	item, err := b.pick(category, option)
	if err != nil {
		return err
	}
	if item == nil {
		if !required {
			return nil
		}
		ref := category
		if option != "" {
			ref = category + ":" + option
		}
		return &MissingCatalogItemError{Source: source, Ref: ref}
	}
	computed, err := services.ComputeComputedQty(item.MeasureBasis, qty,
		services.Dim(widthM), services.Dim(heightM), item.RollWidthM)
	if err != nil {
		return err
	}
	b.add(*item, computed, source)
	return nil
}

// drive adds the motor or manual control of an operating system.
func (b *lineBuilder) drive(os configurator.OperatingSystem, qty float64) error {
	switch os.DriveType {
	case configurator.DriveMotor:
		return b.component(CategoryMotor, os.MotorFamily, true, SourceMotor, qty, 0, 0)
	case configurator.DriveManual:
		return b.component(CategoryControl, "", true, SourceControl, qty, 0, 0)
	}
	return &MissingCatalogItemError{Source: SourceControl, Ref: "driveType"}
}

// rollerHardware adds tube, drive, cassette and side channels of a roller
// type product with the given number of rollers per unit.
func (b *lineBuilder) rollerHardware(os configurator.OperatingSystem, hw configurator.Hardware, widthM, heightM float64, units, rollers int) error {
	rolls := float64(units * rollers)
	if err := b.component(CategoryTube, os.TubeType, true, SourceTube, rolls, widthM, heightM); err != nil {
		return err
	}
	if err := b.drive(os, rolls); err != nil {
		return err
	}
	if hw.CassetteShape != "" && hw.CassetteShape != "open" {
		if err := b.component(CategoryCassette, hw.CassetteShape, true, SourceCassette, float64(units), widthM, heightM); err != nil {
			return err
		}
	}
	if hw.SideChannel {
		// Two channels per shade, measured along the drop.
		if err := b.component(CategorySideChannel, hw.SideChannelType, true, SourceSideChannel, float64(2*units), 0, heightM); err != nil {
			return err
		}
	}
	return nil
}

func (b *lineBuilder) accessories(lines []configurator.AccessoryLine) {
	for _, l := range lines {
		b.items = append(b.items, BOMItem{
			CatalogItemID: l.CatalogItemID,
			Description:   l.Name,
			Qty:           float64(l.Qty),
			UOM:           services.DefaultUOM(services.BasisUnit),
			UnitPrice:     l.UnitPrice,
			ExtendedPrice: l.ExtendedPrice(),
			Source:        SourceAccessory,
		})
	}
}

func (b *lineBuilder) add(item CatalogItem, qty float64, source Source) {
	if item.UOM == "" {
		item.UOM = services.DefaultUOM(item.MeasureBasis)
	}
	b.items = append(b.items, BOMItem{
		CatalogItemID: item.ID,
		SKU:           item.SKU,
		Description:   item.Name,
		Qty:           qty,
		UOM:           item.UOM,
		UnitPrice:     item.UnitPrice,
		ExtendedPrice: services.CalcExtendedPrice(item.UnitPrice, qty),
		Source:        source,
	})
}

func (b *lineBuilder) result() *BOMResult {
	var subtotal float64
	for _, it := range b.items {
		subtotal += it.ExtendedPrice
	}
	items := b.items
	if items == nil {
		items = []BOMItem{}
	}
	return &BOMResult{Items: items, Subtotal: subtotal, Total: subtotal}
}

func (b *lineBuilder) lookup(id string) (*CatalogItem, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}
	item, err := b.provider.FindItemByID(b.ctx, id)
	if err != nil {
		return nil, &CatalogLookupError{Op: "find item", Ref: id, Err: err}
	}
	return item, nil
}

// pick returns the first item of the product type in category whose option
// matches. An empty option matches any item of the category.
func (b *lineBuilder) pick(category, option string) (*CatalogItem, error) {
	if !b.loaded {
		if err := b.ctx.Err(); err != nil {
			return nil, err
		}
		items, err := b.provider.FindItemsByType(b.ctx, b.productTypeID)
		if err != nil {
			return nil, &CatalogLookupError{Op: "find items by type", Ref: b.productTypeID, Err: err}
		}
		b.typeItems = items
		b.loaded = true
	}
	for i := range b.typeItems {
		it := b.typeItems[i]
		if it.Category != category {
			continue
		}
		if option == "" || strings.EqualFold(it.Option, option) {
			return &it, nil
		}
	}
	return nil, nil
}
