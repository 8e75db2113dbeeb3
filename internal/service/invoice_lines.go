package service

import (
	"strings"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

// LineRepo extends InvoiceRepo with line and item access.
type LineRepo interface {
	InvoiceRepo
	GetItem(companyID, id string) (*billing.Item, error)
	CreateInvoiceLine(line *billing.InvoiceLine) error
	GetInvoiceLine(invoiceID, lineID string) (*billing.InvoiceLine, error)
	DeleteInvoiceLine(invoiceID, lineID string) error
}

// AddLineInput describes a line to append to an invoice. UnitPriceCents is
// a pointer so "omitted" and "zero" stay distinguishable: when ItemID is
// set and the price is omitted, the item's current price is snapshotted.
type AddLineInput struct {
	ItemID             string
	Description        string
	QuantityHundredths int64
	UnitPriceCents     *int64
}

// AddInvoiceLine appends a line to an editable invoice and recalculates
// totals. Item lookups are tenancy-checked against the invoice's company.
func AddInvoiceLine(repo LineRepo, inv *billing.Invoice, in AddLineInput) (*billing.InvoiceLine, error) {
	if !billing.Editable(inv.Status) {
		return nil, ErrInvoiceLocked
	}
	if in.QuantityHundredths <= 0 {
		return nil, ErrQuantityNotPositive
	}

	unitPrice := in.UnitPriceCents
	description := strings.TrimSpace(in.Description)

	if in.ItemID != "" {
		item, err := repo.GetItem(inv.CompanyID, in.ItemID)
		if err != nil || item == nil {
			return nil, ErrItemNotFound
		}
		if unitPrice == nil {
			p := item.UnitPriceCents
			unitPrice = &p
		}
		if description == "" {
			description = item.Name
		}
	}
	if unitPrice == nil {
		return nil, ErrUnitPriceRequired
	}

	line := &billing.InvoiceLine{
		ID:                 billing.NewID(),
		InvoiceID:          inv.ID,
		ItemID:             in.ItemID,
		Description:        description,
		QuantityHundredths: in.QuantityHundredths,
		UnitPriceCents:     *unitPrice,
	}
	if err := repo.CreateInvoiceLine(line); err != nil {
		return nil, err
	}

	if err := RecalcInvoiceTotals(repo, inv); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveInvoiceLine deletes a line from an editable invoice and
// recalculates totals.
func RemoveInvoiceLine(repo LineRepo, inv *billing.Invoice, lineID string) error {
	if !billing.Editable(inv.Status) {
		return ErrInvoiceLocked
	}
	line, err := repo.GetInvoiceLine(inv.ID, lineID)
	if err != nil || line == nil {
		return ErrLineNotFound
	}
	if err := repo.DeleteInvoiceLine(inv.ID, lineID); err != nil {
		return err
	}
	return RecalcInvoiceTotals(repo, inv)
}
