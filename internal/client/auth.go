package client

import (
	"context"
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
)

type AuthGroup struct{ c *Client }

func (g *AuthGroup) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := g.c.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the response body plus the session token
// harvested from the API's Set-Cookie header. The console re-plants the token
// as its own cookie on the browser.
func (g *AuthGroup) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	var out dto.LoginResponse
	var token string
	err := g.c.doResp(ctx, http.MethodPost, "/login", req, &out, func(resp *http.Response) {
		for _, ck := range resp.Cookies() {
			if ck.Name == g.c.cookieName {
				token = ck.Value
			}
		}
	})
	if err != nil {
		return nil, "", err
	}
	return &out, token, nil
}

func (g *AuthGroup) Logout(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

func (g *AuthGroup) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := g.c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users covers the admin-only user administration endpoints.

func (g *AuthGroup) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := g.c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *AuthGroup) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := g.c.do(ctx, http.MethodPut, userPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *AuthGroup) DeleteUser(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, userPath(id), nil, nil)
}
