package services

import (
	"slices"
	"testing"
)

func TestUOMOptions(t *testing.T) {
	if len(UOMOptions) == 0 {
		t.Fatal("UOMOptions should not be empty")
	}
	for _, opt := range UOMOptions {
		if opt == "" {
			t.Error("UOMOptions contains empty string")
		}
	}
}

func TestDefaultUOM(t *testing.T) {
	tests := []struct {
		basis  MeasureBasis
		expect string
	}{
		{BasisUnit, "ea"},
		{BasisLinearM, "m"},
		{BasisArea, "m2"},
		{BasisFabric, "m"},
		{MeasureBasis("bogus"), "ea"},
	}
	for _, tt := range tests {
		got := DefaultUOM(tt.basis)
		if got != tt.expect {
			t.Errorf("DefaultUOM(%q) = %q, want %q", tt.basis, got, tt.expect)
		}
		if !slices.Contains(UOMOptions, got) {
			t.Errorf("DefaultUOM(%q) = %q is not a UOM option", tt.basis, got)
		}
	}
}
