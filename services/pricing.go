// Package services provides quantity, pricing and export functions for
// configured quote lines and their bills of materials.
package services

import "math"

// CalcExtendedPrice returns unitPrice * qty.
func CalcExtendedPrice(unitPrice, qty float64) float64 {
	return unitPrice * qty
}

// CalcAccessoriesTotal sums the extended prices of accessory lines.
func CalcAccessoriesTotal(items []AccessoryForTotals) float64 {
	var sum float64
	for _, a := range items {
		sum += CalcExtendedPrice(a.UnitPrice, float64(a.Qty))
	}
	return sum
}

// AccessoryForTotals is the pricing view of one accessory line.
type AccessoryForTotals struct {
	UnitPrice float64
	Qty       int
}

// CalcLineTotal returns the total of one quote line:
// unitPrice * computedQty + accessoriesTotal.
func CalcLineTotal(unitPrice, computedQty, accessoriesTotal float64) float64 {
	return unitPrice*computedQty + accessoriesTotal
}

// QuoteTotals holds the aggregated totals of a quote.
type QuoteTotals struct {
	Lines            int
	ProductTotal     float64
	AccessoriesTotal float64
	Total            float64
}

// LineForTotals is the pricing view of one persisted quote line.
type LineForTotals struct {
	UnitPrice        float64
	ComputedQty      float64
	AccessoriesTotal float64
}

// CalcQuoteTotals sums every line of a quote.
func CalcQuoteTotals(lines []LineForTotals) QuoteTotals {
	var totals QuoteTotals
	for _, l := range lines {
		totals.Lines++
		totals.ProductTotal += l.UnitPrice * l.ComputedQty
		totals.AccessoriesTotal += l.AccessoriesTotal
	}
	totals.Total = totals.ProductTotal + totals.AccessoriesTotal
	return totals
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RoundQty rounds a computed quantity to three decimal places (millimetre
// precision for linear quantities).
func RoundQty(qty float64) float64 {
	return math.Round(qty*1000) / 1000
}
