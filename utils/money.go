package utils

import (
	"fmt"
	"math"
	"strconv"
)

const ratePrecision = 1_000_000

// MaxAmount is the largest subtotal ComputeTotals accepts. Its cents times a
// rate below 1 in parts per million stays well inside int64.
const MaxAmount = 1_000_000_000

// ToCents converts a dollar amount to whole cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// ComputeTotals applies the sales tax rate to a subtotal in [0, MaxAmount].
// Tax is rounded half-up to the cent once; total is subtotal plus that rounded tax,
// so total-subtotal always equals tax exactly.
func ComputeTotals(subtotal, rate float64) (sub, tax, total float64) {
	subCents := ToCents(subtotal)
	ratePPM := int64(math.Round(rate * ratePrecision))
	taxCents := (subCents*ratePPM + ratePrecision/2) / ratePrecision
	return FromCents(subCents), FromCents(taxCents), FromCents(subCents + taxCents)
}

// FormatCurrency renders an amount as "$1234.50".
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent renders a rate such as 0.06625 as "6.625".
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*100000)/1000, 'f', -1, 64)
}
