package console

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/config"

	"github.com/stretchr/testify/assert"
)

func testConsole(t *testing.T, apiURL string) *Console {
	t.Helper()
	cfg := &config.Config{
		Env:               "test",
		SessionCookieName: "session",
		SessionHours:      8,
		APIBaseURL:        apiURL,
	}
	con, err := New(cfg, client.New(apiURL, "session"))
	assert.NoError(t, err)
	return con
}

func withSessionCookies(req *http.Request, role string) {
	req.AddCookie(&http.Cookie{Name: "session", Value: "token"})
	req.AddCookie(&http.Cookie{Name: cookieUsername, Value: "alice"})
	req.AddCookie(&http.Cookie{Name: cookieRole, Value: role})
}

// stubAPI answers every dashboard endpoint with a minimal payload.
func stubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	respond := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}
	mux.HandleFunc("/dashboard/stats", respond(`{"total_products":3,"total_suppliers":1,"low_stock_items":2,"active_alerts":1}`))
	mux.HandleFunc("/dashboard/inventory-status", respond(`{"in_stock":1,"low_stock":1,"out_of_stock":1}`))
	mux.HandleFunc("/dashboard/transaction-trends", respond(`[]`))
	mux.HandleFunc("/dashboard/low-stock-products", respond(`[]`))
	mux.HandleFunc("/dashboard/category-distribution", respond(`[]`))
	return httptest.NewServer(mux)
}

func TestDashboardMenuGating(t *testing.T) {
	api := stubAPI(t)
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	for _, tc := range []struct {
		role      string
		showUsers bool
	}{
		{"admin", true},
		{"staff", false},
		{"", false},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		withSessionCookies(req, tc.role)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.showUsers, strings.Contains(w.Body.String(), `href="/users"`),
			"role %q", tc.role)
	}
}

func TestDashboardFailureIsAllOrNothing(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	withSessionCookies(req, "staff")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not load dashboard data")
	assert.NotContains(t, w.Body.String(), "Total Products")
}

func TestLogoutClearsSessionEvenWhenAPIFails(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	withSessionCookies(req, "staff")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := map[string]bool{}
	for _, ck := range w.Result().Cookies() {
		if ck.Value == "" && ck.MaxAge < 0 {
			cleared[ck.Name] = true
		}
	}
	assert.True(t, cleared["session"], "session cookie must be dropped")
	assert.True(t, cleared[cookieUsername])
	assert.True(t, cleared[cookieRole])
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	api := stubAPI(t)
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
