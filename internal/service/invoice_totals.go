package service

import (
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

// InvoiceRepo is the repository surface the invoice services need.
type InvoiceRepo interface {
	ListInvoiceLines(invoiceID string) ([]billing.InvoiceLine, error)
	UpdateInvoice(inv *billing.Invoice) error
}

// RecalcInvoiceTotals recomputes subtotal, tax and total from the stored
// lines (snapshot values, not current item prices) and persists the
// invoice. The caller's invoice is updated in place.
//
// Line amounts accumulate exactly in hundredths of a cent and round to
// whole cents once, so fractional quantities never drift the subtotal by
// a cent per line.
func RecalcInvoiceTotals(repo InvoiceRepo, inv *billing.Invoice) error {
	lines, err := repo.ListInvoiceLines(inv.ID)
	if err != nil {
		return err
	}

	var raw int64
	for _, line := range lines {
		raw += billing.LineAmountRaw(line.QuantityHundredths, line.UnitPriceCents)
	}
	subtotal := billing.CentsFromRaw(raw)

	inv.SubtotalCents = subtotal
	inv.TaxTotalCents = billing.TaxCents(subtotal, inv.TaxRateBps)
	inv.TotalCents = inv.SubtotalCents + inv.TaxTotalCents

	return repo.UpdateInvoice(inv)
}
