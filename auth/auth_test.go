package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLogin(t *testing.T) {
	a := NewAuthenticator("admin", "1234", "SRMS-ADMIN-001", nil)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	s, err := a.Login("admin", "1234")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.User != "admin" || s.AdminID != "Admin ID: SRMS-ADMIN-001" || !s.StartedAt.Equal(fixed) {
		t.Errorf("session = %+v", s)
	}
	if s.ID == uuid.Nil {
		t.Error("session id is nil")
	}

	other, _ := a.Login("admin", "1234")
	if other.ID == s.ID {
		t.Error("two sessions share an id")
	}
}

func TestLoginRejects(t *testing.T) {
	a := NewAuthenticator("admin", "1234", "SRMS-ADMIN-001", nil)
	tests := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"Admin", "1234"},
		{"", ""},
		{"admin", " 1234"},
	}
	for _, tt := range tests {
		if _, err := a.Login(tt.user, tt.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) error = %v, want ErrInvalidCredentials", tt.user, tt.pass, err)
		}
	}
}
