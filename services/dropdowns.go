package services

// UOMOptions returns the list of catalog unit of measurement options.
var UOMOptions = []string{
	"ea",
	"set",
	"pair",
	"m",
	"m2",
	"roll",
}

// DefaultUOM returns the unit of measurement implied by a measure basis.
// Fabric is sold by the running metre of the roll.
func DefaultUOM(basis MeasureBasis) string {
	switch basis {
	case BasisLinearM, BasisFabric:
		return "m"
	case BasisArea:
		return "m2"
	}
	return "ea"
}
