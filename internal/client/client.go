// Package client is a typed gateway to the inventory API. Each method maps a
// single operation to one HTTP round-trip: no retries, no caching, no request
// deduplication. The session cookie is attached implicitly to every call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	cookieName string
	session    string
	http       *http.Client

	Auth         *AuthGroup
	Products     *ProductsGroup
	Suppliers    *SuppliersGroup
	Inventory    *InventoryGroup
	Transactions *TransactionsGroup
	Alerts       *AlertsGroup
	Dashboard    *DashboardGroup
}

// New builds a client for the API at baseURL. cookieName is the name of the
// session cookie the API issues at login.
func New(baseURL, cookieName string) *Client {
	c := &Client{
		baseURL:    baseURL,
		cookieName: cookieName,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
	c.wireGroups()
	return c
}

// WithSession returns a shallow copy bound to the given session token. The
// console builds one per incoming request, forwarding the browser's cookie.
func (c *Client) WithSession(token string) *Client {
	cp := *c
	cp.session = token
	cp.wireGroups()
	return &cp
}

func (c *Client) wireGroups() {
	c.Auth = &AuthGroup{c: c}
	c.Products = &ProductsGroup{c: c}
	c.Suppliers = &SuppliersGroup{c: c}
	c.Inventory = &InventoryGroup{c: c}
	c.Transactions = &TransactionsGroup{c: c}
	c.Alerts = &AlertsGroup{c: c}
	c.Dashboard = &DashboardGroup{c: c}
}

// do performs one round-trip. body and out may be nil. Non-2xx responses are
// converted to *Error carrying the server detail when one was sent.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.doResp(ctx, method, path, body, out, nil)
}

// doResp is do with an optional hook over the raw response, used by Login to
// harvest the Set-Cookie session token.
func (c *Client) doResp(ctx context.Context, method, path string, body, out interface{}, onResp func(*http.Response)) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inventory API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if onResp != nil {
		onResp(resp)
	}

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
