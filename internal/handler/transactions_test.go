package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/middleware"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type stubTransactionService struct {
	gotUserID uint
	gotReq    dto.CreateTransactionRequest
}

func (s *stubTransactionService) Create(_ context.Context, userID uint, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	s.gotUserID = userID
	s.gotReq = req
	return &dto.TransactionResponse{ID: 1, ProductID: req.ProductID, UserID: userID, Type: req.Type, QuantityChange: req.QuantityChange}, nil
}

func (s *stubTransactionService) List(context.Context) ([]dto.TransactionResponse, error) {
	return nil, nil
}

func (s *stubTransactionService) Delete(context.Context, uint) error { return nil }

func signTestToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": "alice",
		"role":     model.RoleStaff,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

// The acting user must come from the session token; a user_id smuggled into
// the body is ignored.
func TestTransactionCreateUsesSessionUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubTransactionService{}
	h := NewTransactionsHandler(svc)

	r := gin.New()
	r.POST("/transactions", middleware.SessionAuth("session", "test-secret"), h.Create)

	body, _ := json.Marshal(map[string]interface{}{
		"product_id":      2,
		"type":            model.TxSale,
		"quantity_change": -3,
		"user_id":         999,
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session", Value: signTestToken(t, "test-secret", 42)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(42), svc.gotUserID)
	assert.Equal(t, uint(2), svc.gotReq.ProductID)
	assert.Equal(t, -3, svc.gotReq.QuantityChange)
}

func TestTransactionCreateRejectsMissingSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTransactionsHandler(&stubTransactionService{})

	r := gin.New()
	r.POST("/transactions", middleware.SessionAuth("session", "test-secret"), h.Create)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
