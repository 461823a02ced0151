package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

const testSecret = "test-signing-key"

func newAuthFixture(t *testing.T) (*AuthService, *memDB) {
	t.Helper()
	db := newMemDB()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	db.users[1] = &domain.User{
		ID:           1,
		Email:        "amina@jtcsoft.local",
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
	}
	return NewAuthService(&stubUserRepo{db: db}, testSecret, time.Hour), db
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, user, err := svc.Login(context.Background(), "amina@jtcsoft.local", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Errorf("expected role %s, got %s", domain.RoleEmployee, user.Role)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "amina@jtcsoft.local" {
		t.Errorf("unexpected email claim: %v", claims["email"])
	}
	if claims["role"] != domain.RoleEmployee {
		t.Errorf("unexpected role claim: %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("missing exp claim")
	}
}

func TestAuthService_LoginRejections(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "amina@jtcsoft.local", "nope"},
		{"unknown email", "ghost@jtcsoft.local", "s3cret"},
		{"empty email", "", "s3cret"},
		{"empty password", "amina@jtcsoft.local", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tc.email, tc.password)
			assertStatus(t, err, http.StatusUnauthorized)
		})
	}
}
