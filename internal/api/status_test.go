package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
	"github.com/gin-gonic/gin"
)

// pingRepo stubs only the Ping method; nothing else is called.
type pingRepo struct {
	storage.Repository
	err error
}

func (p *pingRepo) Ping() error { return p.err }

func renderStatusPage(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", StatusPage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestStatusPageContent(t *testing.T) {
	w := renderStatusPage(t)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Locksum",
		"auth - customers - items - invoices",
		"/api/health",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("status page missing %q", want)
		}
	}
}

func TestStatusPageIdempotent(t *testing.T) {
	first := renderStatusPage(t)
	second := renderStatusPage(t)

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Fatal("rendering twice must produce byte-identical output")
	}
}

func TestHealthOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", Health(&pingRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", Health(&pingRepo{err: errors.New("db gone")}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"degraded"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
