package api

import (
	"time"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
)

// Handler groups the billing HTTP handlers (customers, items, invoices).
type Handler struct {
	repo          storage.Repository
	invoicePrefix string
}

// NewHandler creates a Handler with the given repository and the prefix
// used for generated invoice numbers.
func NewHandler(repo storage.Repository, invoicePrefix string) *Handler {
	return &Handler{repo: repo, invoicePrefix: invoicePrefix}
}

// AuthHandler groups registration, login and session handlers.
type AuthHandler struct {
	repo     storage.Repository
	tokenTTL time.Duration
}

// NewAuthHandler creates an AuthHandler minting tokens with the given TTL.
func NewAuthHandler(repo storage.Repository, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{repo: repo, tokenTTL: tokenTTL}
}
