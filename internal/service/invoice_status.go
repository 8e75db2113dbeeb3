package service

import (
	"strings"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

// ChangeInvoiceStatus applies the draft -> sent -> paid/void lifecycle.
// Requesting the current status is a no-op. Totals are refreshed before a
// real transition so a sent or paid invoice always carries final numbers.
func ChangeInvoiceStatus(repo InvoiceRepo, inv *billing.Invoice, newStatus string) error {
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))
	if !billing.ValidStatus(newStatus) {
		return ErrUnknownStatus
	}

	current := inv.Status
	if current == "" {
		current = billing.StatusDraft
	}
	if newStatus == current {
		return nil
	}
	if !billing.CanTransition(current, newStatus) {
		return ErrInvalidTransition
	}

	if err := RecalcInvoiceTotals(repo, inv); err != nil {
		return err
	}
	inv.Status = newStatus
	return repo.UpdateInvoice(inv)
}
