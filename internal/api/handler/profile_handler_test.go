package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

type stubProfileService struct {
	user *domain.User
	err  error

	gotUserID string
	gotInput  ports.ProfileUpdateInput
}

func (s *stubProfileService) Get(_ context.Context, userID string) (*domain.User, error) {
	s.gotUserID = userID
	return s.user, s.err
}

func (s *stubProfileService) Update(_ context.Context, userID string, input ports.ProfileUpdateInput) error {
	s.gotUserID = userID
	s.gotInput = input
	return s.err
}

func TestProfileHandler_Get_OK(t *testing.T) {
	user := sampleUser(domain.UserTypeJobSeeker)
	svc := &stubProfileService{user: user}
	h := NewProfileHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues(user.ID)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if svc.gotUserID != user.ID {
		t.Errorf("expected lookup for %s, got %s", user.ID, svc.gotUserID)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.ID != user.ID || resp.Email != user.Email {
		t.Errorf("unexpected profile: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatal("password hash leaked into the profile response")
	}
}

func TestProfileHandler_Get_NotFoundPropagates(t *testing.T) {
	svc := &stubProfileService{err: domain.ErrUserNotFound}
	h := NewProfileHandler(svc)

	c, _ := newTestContext(http.MethodGet, "/api/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues(domain.NewID())
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestProfileHandler_Update_OK(t *testing.T) {
	svc := &stubProfileService{}
	h := NewProfileHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/api/users/abc/profile",
		`{"title":"Backend Engineer","skills":["go","mongodb"]}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUserID != "user-1" {
		t.Errorf("expected update for user-1, got %s", svc.gotUserID)
	}
	fields := svc.gotInput.Fields
	if fields.Title == nil || *fields.Title != "Backend Engineer" {
		t.Errorf("title not forwarded: %+v", fields)
	}
	if fields.Skills == nil || len(*fields.Skills) != 2 {
		t.Errorf("skills not forwarded: %+v", fields)
	}
}

func TestProfileHandler_Update_ForwardsImmutableFields(t *testing.T) {
	svc := &stubProfileService{err: domain.Validationf("email cannot be changed")}
	h := NewProfileHandler(svc)

	// The immutable fields are bound and passed on so the service can reject
	// them explicitly instead of dropping them.
	c, _ := newTestContext(http.MethodPut, "/api/users/abc/profile", `{"email":"new@mail.example"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	err := h.Update(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error to propagate, got %v", err)
	}
	if svc.gotInput.Email == nil || *svc.gotInput.Email != "new@mail.example" {
		t.Errorf("email attempt not forwarded: %+v", svc.gotInput)
	}
}
