package services

import "fmt"

// MeasureBasis is the convention by which a catalog item's billable
// quantity is derived from physical dimensions.
type MeasureBasis string

const (
	BasisUnit    MeasureBasis = "unit"
	BasisLinearM MeasureBasis = "linear_m"
	BasisArea    MeasureBasis = "area"
	BasisFabric  MeasureBasis = "fabric"
)

// MeasureBases lists every supported basis.
var MeasureBases = []MeasureBasis{BasisUnit, BasisLinearM, BasisArea, BasisFabric}

// MissingDimensionError reports a dimension the basis needs but was not
// given (or, for roll width, was not positive).
type MissingDimensionError struct {
	Basis     MeasureBasis
	Dimension string
}

func (e *MissingDimensionError) Error() string {
	return fmt.Sprintf("measure basis %s requires %s", e.Basis, e.Dimension)
}

// UnknownMeasureBasisError reports a basis value that is not supported.
type UnknownMeasureBasisError struct {
	Basis MeasureBasis
}

func (e *UnknownMeasureBasisError) Error() string {
	return fmt.Sprintf("unknown measure basis %q", string(e.Basis))
}

// ComputeComputedQty returns the billable quantity of qty units of an item
// measured by basis:
//
//	unit      qty
//	linear_m  qty * width (height when width is absent)
//	area      qty * width * height
//	fabric    qty * rollWidth * height (width is not used)
//
// A nil dimension is absent. Absent required dimensions are an error, never
// a zero quantity.
func ComputeComputedQty(basis MeasureBasis, qty float64, widthM, heightM, rollWidthM *float64) (float64, error) {
	switch basis {
	case BasisUnit:
		return qty, nil
	case BasisLinearM:
		if widthM != nil {
			return qty * *widthM, nil
		}
		if heightM != nil {
			return qty * *heightM, nil
		}
		return 0, &MissingDimensionError{Basis: basis, Dimension: "widthM or heightM"}
	case BasisArea:
		if widthM == nil {
			return 0, &MissingDimensionError{Basis: basis, Dimension: "widthM"}
		}
		if heightM == nil {
			return 0, &MissingDimensionError{Basis: basis, Dimension: "heightM"}
		}
		return qty * *widthM * *heightM, nil
	case BasisFabric:
		if heightM == nil {
			return 0, &MissingDimensionError{Basis: basis, Dimension: "heightM"}
		}
		if rollWidthM == nil || *rollWidthM <= 0 {
			return 0, &MissingDimensionError{Basis: basis, Dimension: "rollWidthM > 0"}
		}
		return qty * *rollWidthM * *heightM, nil
	}
	return 0, &UnknownMeasureBasisError{Basis: basis}
}

// Dim returns a pointer to v when v is a positive dimension, nil otherwise.
// Configurations store unset dimensions as zero.
func Dim(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
