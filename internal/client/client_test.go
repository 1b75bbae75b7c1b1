package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestErrorCarriesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"supplier not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "session")
	_, err := c.Products.List(context.Background())

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "supplier not found", apiErr.Error())
}

func TestErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "session")
	_, err := c.Products.List(context.Background())

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed (status 500)", apiErr.Error())
}

func TestSessionCookieAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err == nil {
			got = ck.Value
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "session").WithSession("token-123")
	_, err := c.Suppliers.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "token-123", got)
}

func TestLoginHarvestsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "issued-token", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"logged in","username":"alice","role":"staff"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "session")
	resp, token, err := c.Auth.Login(context.Background(), dto.LoginRequest{
		Username: "alice", Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "staff", resp.Role)
}

func TestListDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"product_id":2,"product_name":"Widget","quantity":0,"low_stock_threshold":10,"status":"out_of_stock"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "session")
	records, err := c.Inventory.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "out_of_stock", records[0].Status)
}
