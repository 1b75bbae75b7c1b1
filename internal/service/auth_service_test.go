package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/config"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return errors.New("not found")
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", SessionHours: 8}
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice", Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleStaff, resp.Role)

	stored := repo.users["alice"]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "alice", Password: "secret1"})
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Username: "alice", Password: "other12"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "bob", Password: "secret1", Role: model.RoleAdmin,
	})
	assert.NoError(t, err)

	user, token, err := svc.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "secret1"})
	assert.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "bob", claims["username"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.EqualValues(t, user.ID, claims["user_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())
	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "bob", Password: "secret1"})
	assert.NoError(t, err)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "wrong12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUserChangesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())
	created, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "carol", Password: "secret1"})
	assert.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID, dto.UpdateUserRequest{Role: model.RoleAdmin})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
}
