package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/logging"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/service"
	"github.com/gin-gonic/gin"
)

type CreateInvoicePayload struct {
	CustomerID string `json:"customer_id"`
	Number     string `json:"number"`
	TaxRateBps int64  `json:"tax_rate_bps"`
	Currency   string `json:"currency"`
	Notes      string `json:"notes"`
}

type UpdateInvoicePayload struct {
	CustomerID *string `json:"customer_id"`
	Number     *string `json:"number"`
	TaxRateBps *int64  `json:"tax_rate_bps"`
	Currency   *string `json:"currency"`
	Notes      *string `json:"notes"`
}

type AddInvoiceLinePayload struct {
	ItemID             string `json:"item_id"`
	Description        string `json:"description"`
	QuantityHundredths int64  `json:"quantity_hundredths"`
	UnitPriceCents     *int64 `json:"unit_price_cents"`
}

type SetStatusPayload struct {
	Status string `json:"status"`
}

// getInvoice loads a tenancy-checked invoice or writes the 404 itself.
func (h *Handler) getInvoice(c *gin.Context) (*billing.Invoice, bool) {
	inv, err := h.repo.GetInvoice(companyID(c), c.Param("invoiceID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrInvoiceNotFound})
		return nil, false
	}
	return inv, true
}

func invoiceLocked(c *gin.Context, status string) {
	c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrInvoiceLockedFmt, status)})
}

// ListInvoices returns the company's invoices, newest first (without lines).
func (h *Handler) ListInvoices(c *gin.Context) {
	invoices, err := h.repo.ListInvoices(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchInvoices})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// CreateInvoice creates a draft invoice for one of the company's customers.
func (h *Handler) CreateInvoice(c *gin.Context) {
	var req CreateInvoicePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.TaxRateBps < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrNegativeAmount})
		return
	}
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = "USD"
	}
	if utf8.RuneCountInString(currency) > 10 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCurrencyExceeds})
		return
	}

	// Customer must exist and belong to this company.
	if _, err := h.repo.GetCustomer(companyID(c), req.CustomerID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCustomerNotFound})
		return
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		number = generateInvoiceNumber(h.invoicePrefix)
	}

	inv := billing.Invoice{
		ID:         billing.NewID(),
		CompanyID:  companyID(c),
		CustomerID: req.CustomerID,
		Number:     number,
		TaxRateBps: req.TaxRateBps,
		Currency:   currency,
		Notes:      req.Notes,
		Status:     billing.StatusDraft,
	}
	if err := h.repo.CreateInvoice(&inv); err != nil {
		logging.Error("failed to create invoice", err, logging.Fields{constants.LogFieldCompanyID: inv.CompanyID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveInvoice})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvoice returns one invoice with its lines.
func (h *Handler) GetInvoice(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoice applies a partial update to an editable invoice and
// refreshes totals (the tax rate may have changed).
func (h *Handler) UpdateInvoice(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}
	if !billing.Editable(inv.Status) {
		invoiceLocked(c, inv.Status)
		return
	}

	var req UpdateInvoicePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	if req.CustomerID != nil {
		if _, err := h.repo.GetCustomer(companyID(c), *req.CustomerID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCustomerNotFound})
			return
		}
		inv.CustomerID = *req.CustomerID
	}
	if req.Number != nil {
		inv.Number = strings.TrimSpace(*req.Number)
	}
	if req.TaxRateBps != nil {
		if *req.TaxRateBps < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrNegativeAmount})
			return
		}
		inv.TaxRateBps = *req.TaxRateBps
	}
	if req.Currency != nil {
		currency := strings.TrimSpace(*req.Currency)
		if utf8.RuneCountInString(currency) > 10 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCurrencyExceeds})
			return
		}
		inv.Currency = currency
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}

	if err := service.RecalcInvoiceTotals(h.repo, inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveInvoice})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvoice removes an editable invoice and its lines; 204 on success.
func (h *Handler) DeleteInvoice(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}
	if !billing.Editable(inv.Status) {
		invoiceLocked(c, inv.Status)
		return
	}
	if err := h.repo.DeleteInvoice(companyID(c), inv.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteInvoice})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddInvoiceLine appends a line, snapshotting the item price when needed,
// and returns the invoice with refreshed totals.
func (h *Handler) AddInvoiceLine(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}

	var req AddInvoiceLinePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	_, err := service.AddInvoiceLine(h.repo, inv, service.AddLineInput{
		ItemID:             req.ItemID,
		Description:        req.Description,
		QuantityHundredths: req.QuantityHundredths,
		UnitPriceCents:     req.UnitPriceCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceLocked):
			invoiceLocked(c, inv.Status)
		case errors.Is(err, service.ErrQuantityNotPositive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrQuantityNotPositive})
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrItemNotFound})
		case errors.Is(err, service.ErrUnitPriceRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrUnitPriceRequired})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveLine})
		}
		return
	}

	// Re-read so the response carries the new line and totals.
	updated, err := h.repo.GetInvoice(companyID(c), inv.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchInvoices})
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// DeleteInvoiceLine removes a line and refreshes totals.
func (h *Handler) DeleteInvoiceLine(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}

	err := service.RemoveInvoiceLine(h.repo, inv, c.Param("lineID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceLocked):
			invoiceLocked(c, inv.Status)
		case errors.Is(err, service.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrInvoiceLineNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteLine})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetInvoiceStatus applies a lifecycle transition.
func (h *Handler) SetInvoiceStatus(c *gin.Context) {
	inv, ok := h.getInvoice(c)
	if !ok {
		return
	}

	var req SetStatusPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	from := inv.Status
	err := service.ChangeInvoiceStatus(h.repo, inv, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrInvalidStatusFmt, req.Status)})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrInvalidTransitionFmt, from, strings.ToLower(strings.TrimSpace(req.Status)))})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveInvoice})
		}
		return
	}
	c.JSON(http.StatusOK, inv)
}
