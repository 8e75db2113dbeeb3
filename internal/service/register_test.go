package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
)

type mockAccountRepo struct {
	usersByEmail map[string]*billing.User
	created      bool
}

func (m *mockAccountRepo) CreateAccount(u *billing.User, co *billing.Company, mem *billing.Membership) error {
	if m.usersByEmail == nil {
		m.usersByEmail = map[string]*billing.User{}
	}
	m.usersByEmail[u.Email] = u
	m.created = true
	return nil
}

func (m *mockAccountRepo) GetUserByEmail(email string) (*billing.User, error) {
	u, ok := m.usersByEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !VerifyPassword("correct horse battery", hash) {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword("wrong password", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestHashPasswordLengthLimits(t *testing.T) {
	if _, err := HashPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if _, err := HashPassword(strings.Repeat("x", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestVerifyPasswordOverlongFailsQuietly(t *testing.T) {
	hash, _ := HashPassword("a valid password")
	if VerifyPassword(strings.Repeat("x", 100), hash) {
		t.Fatal("over-long input must fail authentication, not panic")
	}
}

func TestRegisterAccount(t *testing.T) {
	repo := &mockAccountRepo{}

	u, co, err := RegisterAccount(repo, "Acme Locks", "Owner@Example.COM ", "a valid password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "owner@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if co.Name != "Acme Locks" {
		t.Errorf("company name = %q", co.Name)
	}
	if u.PasswordHash == "" || u.PasswordHash == "a valid password" {
		t.Error("password must be stored hashed")
	}
	if !repo.created {
		t.Fatal("expected account rows to be created")
	}
}

func TestRegisterAccountDuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{usersByEmail: map[string]*billing.User{
		"owner@example.com": {ID: "u-1", Email: "owner@example.com"},
	}}

	_, _, err := RegisterAccount(repo, "Acme Locks", "owner@example.com", "a valid password")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterAccountBadEmail(t *testing.T) {
	for _, email := range []string{"", "nope", "@example.com", "a@", "a@b@c"} {
		_, _, err := RegisterAccount(&mockAccountRepo{}, "Acme Locks", email, "a valid password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("email %q: expected ErrInvalidCredentials, got %v", email, err)
		}
	}
}

func TestRegisterAccountShortCompanyName(t *testing.T) {
	_, _, err := RegisterAccount(&mockAccountRepo{}, "A", "owner@example.com", "a valid password")
	if !errors.Is(err, ErrCompanyNameTooShort) {
		t.Fatalf("expected ErrCompanyNameTooShort, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := &mockAccountRepo{}
	u, _, err := RegisterAccount(repo, "Acme Locks", "owner@example.com", "a valid password")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := Authenticate(repo, "owner@example.com", "a valid password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("authenticated wrong user: %s", got.ID)
	}

	if _, err := Authenticate(repo, "owner@example.com", "bad password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := Authenticate(repo, "nobody@example.com", "a valid password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthenticateDisabledUser(t *testing.T) {
	repo := &mockAccountRepo{}
	u, _, _ := RegisterAccount(repo, "Acme Locks", "owner@example.com", "a valid password")
	u.IsActive = false

	if _, err := Authenticate(repo, "owner@example.com", "a valid password"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestAuthenticateNoPasswordHash(t *testing.T) {
	repo := &mockAccountRepo{usersByEmail: map[string]*billing.User{
		"oauth@example.com": {ID: "u-1", Email: "oauth@example.com", IsActive: true},
	}}

	if _, err := Authenticate(repo, "oauth@example.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for user without hash, got %v", err)
	}
}

func TestProvisionOAuthUser(t *testing.T) {
	repo := &mockAccountRepo{}

	u, err := ProvisionOAuthUser(repo, "Jane@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Error("oauth user must not get a password hash")
	}

	// Second sign-in returns the same user.
	again, err := ProvisionOAuthUser(repo, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("expected existing user, got %s", again.ID)
	}
}
