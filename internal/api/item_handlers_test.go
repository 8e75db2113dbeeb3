package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
	"github.com/gin-gonic/gin"
)

// itemListRepo records the includeInactive flag ListItems was called with.
type itemListRepo struct {
	storage.Repository
	includeInactive bool
}

func (r *itemListRepo) ListItems(companyID string, includeInactive bool) ([]billing.Item, error) {
	r.includeInactive = includeInactive
	return []billing.Item{}, nil
}

func listItemsWithQuery(t *testing.T, query string) bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := &itemListRepo{}
	h := NewHandler(repo, "INV")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/items"+query, nil)
	c.Set(ctxCompanyID, "co-1")

	h.ListItems(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	return repo.includeInactive
}

func TestListItemsIncludeInactiveFlag(t *testing.T) {
	cases := map[string]bool{
		"":                        false,
		"?include_inactive=true":  true,
		"?include_inactive=True":  true,
		"?include_inactive=1":     true,
		"?include_inactive=false": false,
		"?include_inactive=0":     false,
		"?include_inactive=yes":   false, // not a ParseBool value
	}
	for query, want := range cases {
		if got := listItemsWithQuery(t, query); got != want {
			t.Errorf("query %q: includeInactive = %v, want %v", query, got, want)
		}
	}
}
