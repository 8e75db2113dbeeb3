package billing

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh UUID string suitable for a primary key.
func NewID() string { return uuid.NewString() }

// User is an account that can sign in. A user belongs to exactly one
// company through a Membership row (the first membership wins when more
// than one exists).
type User struct {
	ID           string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email        string `json:"email" gorm:"type:varchar(320);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`

	Memberships []Membership `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Company struct {
	ID   string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name string `json:"name" gorm:"type:varchar(200);not null"`

	CreatedAt time.Time `json:"created_at"`

	Memberships []Membership `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Membership links a user to a company with a role (owner/admin/member).
type Membership struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:uq_membership_company_user"`
	CompanyID string `json:"company_id" gorm:"type:varchar(36);not null;uniqueIndex:uq_membership_company_user"`
	Role      string `json:"role" gorm:"type:varchar(50);not null;default:owner"`
}

const RoleOwner = "owner"

// Customer is someone a company bills. Multi-tenant: every row belongs to
// a company and queries must filter on CompanyID.
type Customer struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	CompanyID string `json:"company_id" gorm:"type:varchar(36);index;not null"`

	Name  string `json:"name" gorm:"type:varchar(200);not null"`
	Email string `json:"email,omitempty" gorm:"type:varchar(320)"`
	Phone string `json:"phone,omitempty" gorm:"type:varchar(50)"`

	Address1 string `json:"address1,omitempty" gorm:"type:varchar(200)"`
	Address2 string `json:"address2,omitempty" gorm:"type:varchar(200)"`
	City     string `json:"city,omitempty" gorm:"type:varchar(100)"`
	State    string `json:"state,omitempty" gorm:"type:varchar(50)"`
	Zip      string `json:"zip,omitempty" gorm:"type:varchar(20)"`
	Country  string `json:"country,omitempty" gorm:"type:varchar(80)"`

	CreatedAt time.Time `json:"created_at"`
}

// Item is a product or service a company sells (used on invoice lines).
type Item struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	CompanyID string `json:"company_id" gorm:"type:varchar(36);index;not null"`

	Name        string `json:"name" gorm:"type:varchar(200);not null"`
	SKU         string `json:"sku,omitempty" gorm:"type:varchar(64)"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// Money is stored in integer cents so no amount ever touches a float.
	UnitPriceCents int64 `json:"unit_price_cents" gorm:"not null;default:0"`

	Taxable bool `json:"taxable" gorm:"not null;default:false"`
	Active  bool `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
}

type Invoice struct {
	ID         string `json:"id" gorm:"type:varchar(36);primaryKey"`
	CompanyID  string `json:"company_id" gorm:"type:varchar(36);index;not null"`
	CustomerID string `json:"customer_id" gorm:"type:varchar(36);index;not null"`

	// Human-friendly invoice number; generated when the client omits one.
	Number string `json:"number,omitempty" gorm:"type:varchar(50)"`

	// TaxRateBps is the tax rate in basis points (825 = 8.25%). The
	// original schema used Numeric(6,4); basis points cover the same
	// precision without floats.
	TaxRateBps int64 `json:"tax_rate_bps" gorm:"not null;default:0"`

	SubtotalCents int64 `json:"subtotal_cents" gorm:"not null;default:0"`
	TaxTotalCents int64 `json:"tax_total_cents" gorm:"not null;default:0"`
	TotalCents    int64 `json:"total_cents" gorm:"not null;default:0"`

	Status   string `json:"status" gorm:"type:varchar(20);not null;default:draft"`
	Currency string `json:"currency" gorm:"type:varchar(10);not null;default:USD"`
	Notes    string `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Lines []InvoiceLine `json:"lines,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// InvoiceLine snapshots the billed description and unit price at the time
// the line is added, so later item edits do not rewrite history.
type InvoiceLine struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	InvoiceID string `json:"invoice_id" gorm:"type:varchar(36);index;not null"`
	ItemID    string `json:"item_id,omitempty" gorm:"type:varchar(36)"`

	Description string `json:"description,omitempty" gorm:"type:text"`

	// QuantityHundredths stores quantity times 100 (150 = 1.5 units),
	// matching the original Numeric(12,2) column.
	QuantityHundredths int64 `json:"quantity_hundredths" gorm:"not null"`
	UnitPriceCents     int64 `json:"unit_price_cents" gorm:"not null"`
}
