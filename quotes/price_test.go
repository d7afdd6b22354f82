package quotes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadequote/bom"
	"shadequote/configurator"
	"shadequote/services"
)

type mapProvider map[string]bom.CatalogItem

func (m mapProvider) FindItemsByType(context.Context, string) ([]bom.CatalogItem, error) {
	return nil, nil
}

func (m mapProvider) FindItemByID(_ context.Context, id string) (*bom.CatalogItem, error) {
	if id == "broken" {
		return nil, errors.New("connection reset")
	}
	it, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

var priceCatalog = mapProvider{
	"velvet": {ID: "velvet", MeasureBasis: services.BasisFabric, RollWidthM: services.Dim(2.8), UnitPrice: 2450},
	"solar":  {ID: "solar", MeasureBasis: services.BasisFabric, RollWidthM: services.Dim(1.5), UnitPrice: 1000},
	"screen": {ID: "screen", MeasureBasis: services.BasisFabric, RollWidthM: services.Dim(2.5), UnitPrice: 1000},
	"frame":  {ID: "frame", MeasureBasis: services.BasisArea, UnitPrice: 5000},
}

func TestPriceLine(t *testing.T) {
	tests := []struct {
		name         string
		cfg          configurator.ProductConfig
		wantQty      float64
		wantAccTotal float64
		wantTotal    float64
	}{
		{
			name: "roller shade",
			cfg: &configurator.RollerShade{
				WidthM: 1.2, HeightM: 1.5,
				Fabric: configurator.FabricLayer{VariantID: "screen"},
			},
			wantQty:   3.75,
			wantTotal: 3750,
		},
		{
			name: "roller shade quantity two",
			cfg: &configurator.RollerShade{
				Common: configurator.Common{Quantity: 2},
				WidthM: 1.2, HeightM: 1.5,
				Fabric: configurator.FabricLayer{VariantID: "screen"},
			},
			wantQty:   7.5,
			wantTotal: 7500,
		},
		{
			name: "drapery one drop per panel",
			cfg: &configurator.Drapery{
				Panels:  []configurator.Panel{{WidthM: 1.4}, {WidthM: 1.1}},
				HeightM: 2.7,
				Fabric:  configurator.FabricLayer{VariantID: "velvet"},
				Accessories: []configurator.AccessoryLine{
					{CatalogItemID: "tie", Qty: 2, UnitPrice: 450},
				},
			},
			wantQty:      15.12,
			wantAccTotal: 900,
			wantTotal:    37944,
		},
		{
			name: "window film",
			cfg: &configurator.WindowFilm{
				Panels:  []configurator.Panel{{WidthM: 0.9}, {WidthM: 0.9}, {WidthM: 0.6}},
				HeightM: 1.2,
				Film:    configurator.FabricLayer{VariantID: "solar"},
			},
			wantQty:   5.4,
			wantTotal: 5400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := PriceLine(context.Background(), priceCatalog, tt.cfg)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantQty, price.ComputedQty, 1e-9)
			assert.InDelta(t, tt.wantAccTotal, price.AccessoriesTotal, 1e-9)
			assert.InDelta(t, tt.wantTotal, price.LineTotal, 1e-6)
		})
	}
}

func TestPriceLine_Errors(t *testing.T) {
	ctx := context.Background()
	var missing *bom.MissingCatalogItemError
	var lookup *bom.CatalogLookupError
	var dim *services.MissingDimensionError

	_, err := PriceLine(ctx, priceCatalog, &configurator.Awning{WidthM: 3, HeightM: 2})
	require.ErrorAs(t, err, &missing, "no fabric selected")

	_, err = PriceLine(ctx, priceCatalog, &configurator.Awning{Fabric: configurator.FabricLayer{VariantID: "nope"}})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nope", missing.Ref)

	_, err = PriceLine(ctx, priceCatalog, &configurator.Awning{Fabric: configurator.FabricLayer{VariantID: "broken"}})
	require.ErrorAs(t, err, &lookup)

	_, err = PriceLine(ctx, priceCatalog, &configurator.RollerShade{WidthM: 1, Fabric: configurator.FabricLayer{VariantID: "screen"}})
	require.ErrorAs(t, err, &dim)

	_, err = PriceLine(ctx, priceCatalog, nil)
	var unknown *configurator.UnknownProductTypeError
	require.ErrorAs(t, err, &unknown)
}

func TestDimensions_EmptyPanelsStillOneDrop(t *testing.T) {
	_, _, drops := dimensions(&configurator.WindowFilm{Common: configurator.Common{Quantity: 3}})
	assert.Equal(t, 3.0, drops)
}
