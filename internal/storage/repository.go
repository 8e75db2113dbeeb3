package storage

import (
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

type Repository interface {
	// Accounts
	// CreateAccount persists a company, its owner user and the owner
	// membership in a single transaction.
	CreateAccount(u *billing.User, co *billing.Company, m *billing.Membership) error
	GetUserByEmail(email string) (*billing.User, error)
	GetUserByID(id string) (*billing.User, error)
	// GetCompanyForUser returns the first company the user is a member of.
	GetCompanyForUser(userID string) (*billing.Company, error)

	// Customers (company-scoped)
	ListCustomers(companyID string) ([]billing.Customer, error)
	CreateCustomer(c *billing.Customer) error
	GetCustomer(companyID, id string) (*billing.Customer, error)
	UpdateCustomer(c *billing.Customer) error
	DeleteCustomer(companyID, id string) error

	// Items (company-scoped)
	ListItems(companyID string, includeInactive bool) ([]billing.Item, error)
	CreateItem(it *billing.Item) error
	GetItem(companyID, id string) (*billing.Item, error)
	UpdateItem(it *billing.Item) error
	DeleteItem(companyID, id string) error

	// Invoices (company-scoped)
	ListInvoices(companyID string) ([]billing.Invoice, error)
	CreateInvoice(inv *billing.Invoice) error
	// GetInvoice returns the invoice with its lines preloaded.
	GetInvoice(companyID, id string) (*billing.Invoice, error)
	UpdateInvoice(inv *billing.Invoice) error
	// DeleteInvoice removes the invoice and its lines.
	DeleteInvoice(companyID, id string) error

	// Invoice lines
	ListInvoiceLines(invoiceID string) ([]billing.InvoiceLine, error)
	CreateInvoiceLine(line *billing.InvoiceLine) error
	GetInvoiceLine(invoiceID, lineID string) (*billing.InvoiceLine, error)
	DeleteInvoiceLine(invoiceID, lineID string) error

	// Ping verifies database connectivity for health reporting.
	Ping() error
}
