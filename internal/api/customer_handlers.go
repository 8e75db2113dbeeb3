package api

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/service"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
	"github.com/gin-gonic/gin"
)

type CreateCustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// UpdateCustomerPayload uses pointers so omitted fields stay untouched.
type UpdateCustomerPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`

	Address1 *string `json:"address1"`
	Address2 *string `json:"address2"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Zip      *string `json:"zip"`
	Country  *string `json:"country"`
}

// ListCustomers returns the company's customers ordered by name.
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.repo.ListCustomers(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCustomers})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomer adds a customer to the caller's company.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCustomerNameRequired})
		return
	}
	if utf8.RuneCountInString(name) > 200 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCustomerNameExceeds})
		return
	}

	customer := billing.Customer{
		ID:        billing.NewID(),
		CompanyID: companyID(c),
		Name:      name,
		Email:     service.NormalizeEmail(req.Email),
		Phone:     req.Phone,
		Address1:  req.Address1,
		Address2:  req.Address2,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
	}
	if err := h.repo.CreateCustomer(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveCustomer})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomer returns one customer; other tenants' rows look like 404.
func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.repo.GetCustomer(companyID(c), c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCustomerNotFound})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer applies a partial update.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	customer, err := h.repo.GetCustomer(companyID(c), c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCustomerNotFound})
		return
	}

	var req UpdateCustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCustomerNameRequired})
			return
		}
		if utf8.RuneCountInString(name) > 200 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrCustomerNameExceeds})
			return
		}
		customer.Name = name
	}
	if req.Email != nil {
		customer.Email = service.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address1 != nil {
		customer.Address1 = *req.Address1
	}
	if req.Address2 != nil {
		customer.Address2 = *req.Address2
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.Zip != nil {
		customer.Zip = *req.Zip
	}
	if req.Country != nil {
		customer.Country = *req.Country
	}

	if err := h.repo.UpdateCustomer(customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveCustomer})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	err := h.repo.DeleteCustomer(companyID(c), c.Param("customerID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCustomerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteCustomer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
