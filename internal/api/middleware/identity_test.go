package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, userID, userType string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":   userID,
		"user_type": userType,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeIdentity(authHeader string) (Identity, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved Identity
	var ok bool
	next := func(c echo.Context) error {
		resolved, ok = FromContext(c)
		return nil
	}
	err := NewIdentity(testSecret)(next)(c)
	return resolved, ok, err
}

func TestIdentity_ValidToken(t *testing.T) {
	userID := domain.NewID()
	token := signTestToken(t, testSecret, userID, "employer")

	id, ok, err := invokeIdentity("Bearer " + token)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !ok {
		t.Fatal("identity not set for a valid token")
	}
	if id.UserID != userID || id.UserType != domain.UserTypeEmployer {
		t.Errorf("unexpected identity: %+v", id)
	}
}

func TestIdentity_NoHeaderPassesThrough(t *testing.T) {
	_, ok, err := invokeIdentity("")
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if ok {
		t.Fatal("identity must stay unresolved without an Authorization header")
	}
}

func TestIdentity_Rejections(t *testing.T) {
	wrongKey := signTestToken(t, "other-secret", domain.NewID(), "job_seeker")
	noUser := signTestToken(t, testSecret, "", "job_seeker")

	cases := []struct {
		name   string
		header string
	}{
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signing key", "Bearer " + wrongKey},
		{"missing user_id claim", "Bearer " + noUser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := invokeIdentity(tc.header)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}

func TestIdentity_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":   domain.NewID(),
		"user_type": "job_seeker",
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, _, mErr := invokeIdentity("Bearer " + token)
	var he *echo.HTTPError
	if !errors.As(mErr, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", mErr)
	}
}
