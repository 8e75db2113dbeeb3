package billing

import "fmt"

// All money passes through these helpers as integer cents. A line amount
// (quantity in hundredths times unit price in cents) is exact in
// hundredths of a cent; totals accumulate those raw amounts and round to
// whole cents once, half up.

// roundDiv divides a by b rounding half up. Inputs are never negative in
// any money path (quantities are validated > 0, prices >= 0).
func roundDiv(a, b int64) int64 {
	return (a + b/2) / b
}

// LineAmountRaw returns quantity x unit price in hundredths of a cent,
// with no rounding. Quantity is expressed in hundredths of a unit.
func LineAmountRaw(quantityHundredths, unitPriceCents int64) int64 {
	return quantityHundredths * unitPriceCents
}

// CentsFromRaw rounds a raw hundredth-of-a-cent amount to whole cents.
func CentsFromRaw(raw int64) int64 {
	return roundDiv(raw, 100)
}

// TaxCents applies a basis-point tax rate to a subtotal.
func TaxCents(subtotalCents, rateBps int64) int64 {
	return roundDiv(subtotalCents*rateBps, 10000)
}

// FormatCents renders cents as a decimal string ("1234" -> "12.34").
// Used for logs and human-facing output only; the API speaks cents.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
