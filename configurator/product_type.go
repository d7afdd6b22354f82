// Package configurator holds the product configuration model, the product
// registry and the step-by-step configuration session.
package configurator

// ProductType is the discriminator of a product configuration.
type ProductType string

const (
	TypeRollerShade ProductType = "roller-shade"
	TypeDualShade   ProductType = "dual-shade"
	TypeTripleShade ProductType = "triple-shade"
	TypeDrapery     ProductType = "drapery"
	TypeAwning      ProductType = "awning"
	TypeWindowFilm  ProductType = "window-film"
)

// ProductTypes lists every supported product type in display order.
var ProductTypes = []ProductType{
	TypeRollerShade,
	TypeDualShade,
	TypeTripleShade,
	TypeDrapery,
	TypeAwning,
	TypeWindowFilm,
}

// Valid reports whether t is one of the supported product types.
func (t ProductType) Valid() bool {
	for _, pt := range ProductTypes {
		if pt == t {
			return true
		}
	}
	return false
}

func (t ProductType) String() string {
	return string(t)
}

// DriveType selects the operating mechanism of a shade.
type DriveType string

const (
	DriveManual DriveType = "manual"
	DriveMotor  DriveType = "motor"
)
