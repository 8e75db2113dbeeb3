package storage

import (
	"errors"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// company. Callers translate it to a 404 without leaking tenancy details.
var ErrNotFound = errors.New("record not found")

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// --- accounts ---

func (r *sqliteRepository) CreateAccount(u *billing.User, co *billing.Company, m *billing.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(co).Error; err != nil {
			return err
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
}

func (r *sqliteRepository) GetUserByEmail(email string) (*billing.User, error) {
	var u billing.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

func (r *sqliteRepository) GetUserByID(id string) (*billing.User, error) {
	var u billing.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

func (r *sqliteRepository) GetCompanyForUser(userID string) (*billing.Company, error) {
	var co billing.Company
	err := r.db.
		Joins("JOIN memberships ON memberships.company_id = companies.id").
		Where("memberships.user_id = ?", userID).
		Limit(1).
		Find(&co).Error
	if err != nil {
		return nil, err
	}
	if co.ID == "" {
		return nil, ErrNotFound
	}
	return &co, nil
}

// --- customers ---

func (r *sqliteRepository) ListCustomers(companyID string) ([]billing.Customer, error) {
	var customers []billing.Customer
	err := r.db.Where("company_id = ?", companyID).Order("name asc").Find(&customers).Error
	return customers, err
}

func (r *sqliteRepository) CreateCustomer(c *billing.Customer) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCustomer(companyID, id string) (*billing.Customer, error) {
	var c billing.Customer
	if err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&c).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateCustomer(c *billing.Customer) error {
	return r.db.Save(c).Error
}

func (r *sqliteRepository) DeleteCustomer(companyID, id string) error {
	res := r.db.Where("company_id = ? AND id = ?", companyID, id).Delete(&billing.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- items ---

func (r *sqliteRepository) ListItems(companyID string, includeInactive bool) ([]billing.Item, error) {
	q := r.db.Where("company_id = ?", companyID)
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var items []billing.Item
	err := q.Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *sqliteRepository) CreateItem(it *billing.Item) error {
	return r.db.Create(it).Error
}

func (r *sqliteRepository) GetItem(companyID, id string) (*billing.Item, error) {
	var it billing.Item
	if err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&it).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &it, nil
}

func (r *sqliteRepository) UpdateItem(it *billing.Item) error {
	return r.db.Save(it).Error
}

func (r *sqliteRepository) DeleteItem(companyID, id string) error {
	res := r.db.Where("company_id = ? AND id = ?", companyID, id).Delete(&billing.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- invoices ---

func (r *sqliteRepository) ListInvoices(companyID string) ([]billing.Invoice, error) {
	var invoices []billing.Invoice
	err := r.db.Where("company_id = ?", companyID).Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (r *sqliteRepository) CreateInvoice(inv *billing.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *sqliteRepository) GetInvoice(companyID, id string) (*billing.Invoice, error) {
	var inv billing.Invoice
	err := r.db.Preload("Lines").Where("company_id = ? AND id = ?", companyID, id).First(&inv).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &inv, nil
}

func (r *sqliteRepository) UpdateInvoice(inv *billing.Invoice) error {
	// Save without touching Lines; line mutations go through the
	// dedicated line methods so totals stay the single source of truth.
	return r.db.Omit("Lines").Save(inv).Error
}

func (r *sqliteRepository) DeleteInvoice(companyID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var inv billing.Invoice
		if err := tx.Where("company_id = ? AND id = ?", companyID, id).First(&inv).Error; err != nil {
			return mapNotFound(err)
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&billing.InvoiceLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&inv).Error
	})
}

// --- invoice lines ---

func (r *sqliteRepository) ListInvoiceLines(invoiceID string) ([]billing.InvoiceLine, error) {
	var lines []billing.InvoiceLine
	err := r.db.Where("invoice_id = ?", invoiceID).Find(&lines).Error
	return lines, err
}

func (r *sqliteRepository) CreateInvoiceLine(line *billing.InvoiceLine) error {
	return r.db.Create(line).Error
}

func (r *sqliteRepository) GetInvoiceLine(invoiceID, lineID string) (*billing.InvoiceLine, error) {
	var line billing.InvoiceLine
	if err := r.db.Where("invoice_id = ? AND id = ?", invoiceID, lineID).First(&line).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &line, nil
}

func (r *sqliteRepository) DeleteInvoiceLine(invoiceID, lineID string) error {
	res := r.db.Where("invoice_id = ? AND id = ?", invoiceID, lineID).Delete(&billing.InvoiceLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
