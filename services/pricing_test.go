package services

import (
	"math"
	"testing"
)

func TestCalcExtendedPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		qty       float64
		expect    float64
	}{
		{"basic multiplication", 50, 10, 500},
		{"zero qty", 100, 0, 0},
		{"zero price", 0, 5, 0},
		{"fractional qty", 1450, 3.5, 5075},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcExtendedPrice(tt.unitPrice, tt.qty)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("CalcExtendedPrice(%v, %v) = %v, want %v", tt.unitPrice, tt.qty, got, tt.expect)
			}
		})
	}
}

func TestCalcAccessoriesTotal(t *testing.T) {
	tests := []struct {
		name   string
		items  []AccessoryForTotals
		expect float64
	}{
		{"none", nil, 0},
		{"single", []AccessoryForTotals{{UnitPrice: 240, Qty: 2}}, 480},
		{"several", []AccessoryForTotals{{UnitPrice: 240, Qty: 2}, {UnitPrice: 2900, Qty: 1}}, 3380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcAccessoriesTotal(tt.items)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("CalcAccessoriesTotal() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestCalcLineTotal(t *testing.T) {
	tests := []struct {
		name             string
		unitPrice        float64
		computedQty      float64
		accessoriesTotal float64
		expect           float64
	}{
		{"fabric only", 1450, 3.5, 0, 5075},
		{"with accessories", 1450, 3.5, 480, 5555},
		{"zero qty keeps accessories", 1450, 0, 480, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineTotal(tt.unitPrice, tt.computedQty, tt.accessoriesTotal)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("CalcLineTotal(%v, %v, %v) = %v, want %v",
					tt.unitPrice, tt.computedQty, tt.accessoriesTotal, got, tt.expect)
			}
		})
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	totals := CalcQuoteTotals([]LineForTotals{
		{UnitPrice: 1000, ComputedQty: 2, AccessoriesTotal: 100},
		{UnitPrice: 500, ComputedQty: 1.5, AccessoriesTotal: 0},
	})

	if totals.Lines != 2 {
		t.Errorf("Lines = %d, want 2", totals.Lines)
	}
	if math.Abs(totals.ProductTotal-2750) > 0.001 {
		t.Errorf("ProductTotal = %v, want 2750", totals.ProductTotal)
	}
	if math.Abs(totals.AccessoriesTotal-100) > 0.001 {
		t.Errorf("AccessoriesTotal = %v, want 100", totals.AccessoriesTotal)
	}
	if math.Abs(totals.Total-2850) > 0.001 {
		t.Errorf("Total = %v, want 2850", totals.Total)
	}
}

func TestCalcQuoteTotals_Empty(t *testing.T) {
	totals := CalcQuoteTotals(nil)
	if totals != (QuoteTotals{}) {
		t.Errorf("CalcQuoteTotals(nil) = %+v, want zero value", totals)
	}
}

func TestRounding(t *testing.T) {
	if got := RoundMoney(1234.5678); got != 1234.57 {
		t.Errorf("RoundMoney(1234.5678) = %v, want 1234.57", got)
	}
	if got := RoundQty(1.23456); got != 1.235 {
		t.Errorf("RoundQty(1.23456) = %v, want 1.235", got)
	}
}
