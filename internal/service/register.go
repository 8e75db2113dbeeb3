package service

import (
	"strings"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of input; longer passwords are
// rejected up front instead of being silently truncated.
const bcryptMaxBytes = 72

const minPasswordLength = 8

// AccountRepo is the narrow repository surface registration and login need.
type AccountRepo interface {
	CreateAccount(u *billing.User, co *billing.Company, m *billing.Membership) error
	GetUserByEmail(email string) (*billing.User, error)
}

// HashPassword bcrypt-hashes a password after validating its length.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	if len([]byte(password)) > bcryptMaxBytes {
		return "", ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// Over-long input fails authentication rather than erroring.
func VerifyPassword(password, hash string) bool {
	if hash == "" || len([]byte(password)) > bcryptMaxBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NormalizeEmail lower-cases and trims an email address for storage and
// lookup so addresses compare consistently.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail is a shape check, not RFC validation: one "@" with something
// on both sides.
func validEmail(email string) bool {
	i := strings.IndexByte(email, '@')
	return i > 0 && i < len(email)-1 && !strings.ContainsRune(email[i+1:], '@')
}

// RegisterAccount creates a company, its owner user and the owner
// membership in one transaction and returns the created rows.
func RegisterAccount(repo AccountRepo, companyName, email, password string) (*billing.User, *billing.Company, error) {
	companyName = strings.TrimSpace(companyName)
	if len(companyName) < 2 {
		return nil, nil, ErrCompanyNameTooShort
	}
	email = NormalizeEmail(email)
	if !validEmail(email) {
		return nil, nil, ErrInvalidCredentials
	}

	if existing, err := repo.GetUserByEmail(email); err == nil && existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	co := &billing.Company{ID: billing.NewID(), Name: companyName}
	u := &billing.User{ID: billing.NewID(), Email: email, PasswordHash: hash, IsActive: true}
	m := &billing.Membership{ID: billing.NewID(), CompanyID: co.ID, UserID: u.ID, Role: billing.RoleOwner}

	if err := repo.CreateAccount(u, co, m); err != nil {
		return nil, nil, err
	}
	return u, co, nil
}

// Authenticate verifies credentials and returns the user on success.
// Unknown emails, users without a password hash and bad passwords all
// produce the same ErrInvalidCredentials.
func Authenticate(repo AccountRepo, email, password string) (*billing.User, error) {
	u, err := repo.GetUserByEmail(NormalizeEmail(email))
	if err != nil || u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserDisabled
	}
	return u, nil
}

// ProvisionOAuthUser finds or creates an account for an OAuth sign-in.
// First-time users get a company named after the email local part and an
// owner membership; no password is set, so password login stays disabled
// for them until one exists.
func ProvisionOAuthUser(repo AccountRepo, email string) (*billing.User, error) {
	email = NormalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidCredentials
	}
	if u, err := repo.GetUserByEmail(email); err == nil && u != nil {
		if !u.IsActive {
			return nil, ErrUserDisabled
		}
		return u, nil
	}

	companyName := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		companyName = email[:i]
	}
	co := &billing.Company{ID: billing.NewID(), Name: companyName}
	u := &billing.User{ID: billing.NewID(), Email: email, IsActive: true}
	m := &billing.Membership{ID: billing.NewID(), CompanyID: co.ID, UserID: u.ID, Role: billing.RoleOwner}
	if err := repo.CreateAccount(u, co, m); err != nil {
		return nil, err
	}
	return u, nil
}
