package service

import (
	"testing"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

type mockInvoiceRepo struct {
	lines   []billing.InvoiceLine
	updated *billing.Invoice
}

func (m *mockInvoiceRepo) ListInvoiceLines(invoiceID string) ([]billing.InvoiceLine, error) {
	return m.lines, nil
}

func (m *mockInvoiceRepo) UpdateInvoice(inv *billing.Invoice) error {
	m.updated = inv
	return nil
}

func TestRecalcInvoiceTotals(t *testing.T) {
	inv := &billing.Invoice{ID: "inv-1", TaxRateBps: 1000} // 10%
	repo := &mockInvoiceRepo{lines: []billing.InvoiceLine{
		{QuantityHundredths: 200, UnitPriceCents: 1500}, // 30.00
		{QuantityHundredths: 150, UnitPriceCents: 1000}, // 15.00
	}}

	if err := RecalcInvoiceTotals(repo, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.SubtotalCents != 4500 {
		t.Errorf("subtotal = %d, want 4500", inv.SubtotalCents)
	}
	if inv.TaxTotalCents != 450 {
		t.Errorf("tax = %d, want 450", inv.TaxTotalCents)
	}
	if inv.TotalCents != 4950 {
		t.Errorf("total = %d, want 4950", inv.TotalCents)
	}
	if repo.updated == nil {
		t.Fatal("expected invoice to be persisted")
	}
}

func TestRecalcInvoiceTotalsFractionalLinesRoundOnce(t *testing.T) {
	// Two lines of 0.50 x $0.33 are 16.5 cents each. Rounding per line
	// would give 17 + 17 = 34; the exact sum is 33 cents.
	inv := &billing.Invoice{ID: "inv-1"}
	repo := &mockInvoiceRepo{lines: []billing.InvoiceLine{
		{QuantityHundredths: 50, UnitPriceCents: 33},
		{QuantityHundredths: 50, UnitPriceCents: 33},
	}}

	if err := RecalcInvoiceTotals(repo, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.SubtotalCents != 33 {
		t.Errorf("subtotal = %d, want 33 (exact accumulation, single rounding)", inv.SubtotalCents)
	}
	if inv.TotalCents != 33 {
		t.Errorf("total = %d, want 33", inv.TotalCents)
	}
}

func TestRecalcInvoiceTotalsEmpty(t *testing.T) {
	inv := &billing.Invoice{ID: "inv-1", TaxRateBps: 825, SubtotalCents: 999, TaxTotalCents: 99, TotalCents: 1098}
	repo := &mockInvoiceRepo{}

	if err := RecalcInvoiceTotals(repo, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.SubtotalCents != 0 || inv.TaxTotalCents != 0 || inv.TotalCents != 0 {
		t.Errorf("expected zero totals after removing all lines, got %d/%d/%d", inv.SubtotalCents, inv.TaxTotalCents, inv.TotalCents)
	}
}
