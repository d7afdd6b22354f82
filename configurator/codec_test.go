package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig_PicksVariant(t *testing.T) {
	cfg, err := DecodeConfig([]byte(`{"productType":"drapery","heightM":2.4,"panels":[{"widthM":1.5},{"widthM":1.5}],"lining":{"variantId":"lin1"}}`))
	require.NoError(t, err)

	d, ok := cfg.(*Drapery)
	require.True(t, ok)
	assert.Len(t, d.Panels, 2)
	require.NotNil(t, d.Lining)
	assert.Equal(t, "lin1", d.Lining.VariantID)
	assert.InDelta(t, 3.0, TotalWidth(d.Panels), 1e-9)
}

func TestDecodeConfig_UnknownType(t *testing.T) {
	_, err := DecodeConfig([]byte(`{"productType":"shutter"}`))
	var unknown *UnknownProductTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "shutter", unknown.Type)
}

func TestClone_RoundTripsEveryType(t *testing.T) {
	for _, pt := range ProductTypes {
		t.Run(string(pt), func(t *testing.T) {
			cfg := NewConfig(pt)
			require.NotNil(t, cfg)
			cfg.Base().Area = "Lounge"
			SetAccessories(cfg, []AccessoryLine{{CatalogItemID: "a", Qty: 1}})

			c, err := Clone(cfg)
			require.NoError(t, err)
			assert.Equal(t, cfg, c)
			assert.NotSame(t, cfg, c)
		})
	}
}

func TestEncodeConfig_Nil(t *testing.T) {
	_, err := EncodeConfig(nil)
	assert.ErrorIs(t, err, ErrNoProductType)
}

func TestCommonUnitsDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, (&Common{}).Units())
	assert.Equal(t, 3, (&Common{Quantity: 3}).Units())
}

func TestOperatingSystemComplete(t *testing.T) {
	assert.False(t, OperatingSystem{}.Complete())
	assert.True(t, OperatingSystem{DriveType: DriveManual}.Complete())
	assert.False(t, OperatingSystem{DriveType: DriveMotor}.Complete())
	assert.True(t, OperatingSystem{DriveType: DriveMotor, MotorFamily: "somfy"}.Complete())
}

func TestAccessoryHelpers(t *testing.T) {
	lines := AddAccessory(nil, AccessoryLine{CatalogItemID: "a", Qty: 0, UnitPrice: 10})
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty, "quantity is at least one")

	lines = AddAccessory(lines, AccessoryLine{CatalogItemID: "b", Qty: 2, UnitPrice: 5})
	assert.InDelta(t, 20.0, AccessoriesTotal(lines), 1e-9)

	lines = SetAccessoryQty(lines, "missing", 4)
	assert.Len(t, lines, 2)
	lines = SetAccessoryQty(lines, "b", 4)
	assert.InDelta(t, 30.0, AccessoriesTotal(lines), 1e-9)
}

func TestRegistry(t *testing.T) {
	r := testRegistry()

	_, err := r.Get(TypeWindowFilm)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, r.StepsFor(TypeWindowFilm))
	assert.True(t, r.CanProceed("anything", TypeWindowFilm, nil))

	assert.Len(t, r.StepsFor(TypeRollerShade), 3)
	assert.True(t, r.CanProceed("unknown-step", TypeRollerShade, &RollerShade{}))
	assert.False(t, r.CanProceed("dimensions", TypeRollerShade, &RollerShade{}))

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, TypeAwning, defs[0].Type)
}
