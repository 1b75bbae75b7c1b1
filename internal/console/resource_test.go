package console

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	withSessionCookies(req, "staff")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFailedUpdateKeepsSubmittedForm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Old Name","description":null,"category":"tools","price":5,"supplier_id":1}]`))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"price must be positive"}`))
	})
	mux.HandleFunc("/suppliers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Acme","contact_email":null,"phone_number":null}]`))
	})
	api := httptest.NewServer(mux)
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	w := postForm(router, "/products/save", url.Values{
		"id":          {"1"},
		"name":        {"Renamed Widget"},
		"description": {"still mine"},
		"category":    {"tools"},
		"price":       {"-3"},
		"supplier_id": {"1"},
	})

	// No redirect: the screen comes back with the form still open, showing
	// what was typed rather than the stored record.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	body := w.Body.String()
	assert.Contains(t, body, "price must be positive")
	assert.Contains(t, body, "Edit #1")
	assert.Contains(t, body, `value="Renamed Widget"`)
	assert.Contains(t, body, "still mine")
	assert.NotContains(t, body, `value="Old Name"`)
}

func TestFailedCreateKeepsSubmittedForm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"supplier does not exist"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/suppliers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Acme","contact_email":null,"phone_number":null}]`))
	})
	api := httptest.NewServer(mux)
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	w := postForm(router, "/products/save", url.Values{
		"name":        {"New Widget"},
		"category":    {"tools"},
		"price":       {"9.99"},
		"supplier_id": {"1"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	body := w.Body.String()
	assert.Contains(t, body, "supplier does not exist")
	assert.Contains(t, body, `value="New Widget"`)
	assert.Contains(t, body, `value="9.99"`)
	// Still a create form, not an edit of some phantom record.
	assert.Contains(t, body, "<h3>New</h3>")
	assert.NotContains(t, body, "Edit #")
	assert.NotContains(t, body, `name="id"`)
}

func TestFailedSubmitWithExpiredSessionRedirectsToLogin(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"authentication required"}`))
	}))
	defer api.Close()
	router := testConsole(t, api.URL).Router()

	w := postForm(router, "/suppliers/save", url.Values{"name": {"Acme"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
