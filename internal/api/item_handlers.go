package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
	"github.com/gin-gonic/gin"
)

type CreateItemPayload struct {
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Description    string `json:"description"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Taxable        bool   `json:"taxable"`
	Active         *bool  `json:"active"`
}

type UpdateItemPayload struct {
	Name           *string `json:"name"`
	SKU            *string `json:"sku"`
	Description    *string `json:"description"`
	UnitPriceCents *int64  `json:"unit_price_cents"`
	Taxable        *bool   `json:"taxable"`
	Active         *bool   `json:"active"`
}

func validateItemName(c *gin.Context, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrItemNameRequired})
		return "", false
	}
	if utf8.RuneCountInString(name) > 200 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrItemNameExceeds})
		return "", false
	}
	return name, true
}

// ListItems returns the company's items, active only unless
// ?include_inactive is set truthy ("true", "1", "T", ...), newest first.
func (h *Handler) ListItems(c *gin.Context) {
	includeInactive := false
	if v, err := strconv.ParseBool(c.Query("include_inactive")); err == nil {
		includeInactive = v
	}
	items, err := h.repo.ListItems(companyID(c), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchItems})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem adds a product/service to the catalog.
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name, ok := validateItemName(c, req.Name)
	if !ok {
		return
	}
	sku := strings.TrimSpace(req.SKU)
	if utf8.RuneCountInString(sku) > 64 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrItemSKUExceeds})
		return
	}
	if req.UnitPriceCents < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrNegativeAmount})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item := billing.Item{
		ID:             billing.NewID(),
		CompanyID:      companyID(c),
		Name:           name,
		SKU:            sku,
		Description:    req.Description,
		UnitPriceCents: req.UnitPriceCents,
		Taxable:        req.Taxable,
		Active:         active,
	}
	if err := h.repo.CreateItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveItem})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItem returns one item.
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.repo.GetItem(companyID(c), c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrItemNotFound})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem applies a partial update.
func (h *Handler) UpdateItem(c *gin.Context) {
	item, err := h.repo.GetItem(companyID(c), c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrItemNotFound})
		return
	}

	var req UpdateItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	if req.Name != nil {
		name, ok := validateItemName(c, *req.Name)
		if !ok {
			return
		}
		item.Name = name
	}
	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if utf8.RuneCountInString(sku) > 64 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrItemSKUExceeds})
			return
		}
		item.SKU = sku
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitPriceCents != nil {
		if *req.UnitPriceCents < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrNegativeAmount})
			return
		}
		item.UnitPriceCents = *req.UnitPriceCents
	}
	if req.Taxable != nil {
		item.Taxable = *req.Taxable
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.repo.UpdateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveItem})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item; 204 on success.
func (h *Handler) DeleteItem(c *gin.Context) {
	err := h.repo.DeleteItem(companyID(c), c.Param("itemID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrItemNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteItem})
		return
	}
	c.Status(http.StatusNoContent)
}
