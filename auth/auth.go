package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is an authenticated administrator session
type Session struct {
	ID        uuid.UUID
	User      string
	AdminID   string
	StartedAt time.Time
}

// Authenticator checks a login against a single configured account. There
// is no hashing, lockout or rate limiting.
type Authenticator struct {
	username  string
	password  string
	displayID string
	log       *zap.Logger
	now       func() time.Time
}

func NewAuthenticator(username, password, displayID string, log *zap.Logger) *Authenticator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Authenticator{
		username:  username,
		password:  password,
		displayID: displayID,
		log:       log.Named("auth"),
		now:       time.Now,
	}
}

// Login opens a session when both values match exactly
func (a *Authenticator) Login(username, password string) (*Session, error) {
	if username != a.username || password != a.password {
		a.log.Warn("login failed", zap.String("user", username))
		return nil, ErrInvalidCredentials
	}

	s := &Session{
		ID:        uuid.New(),
		User:      username,
		AdminID:   "Admin ID: " + a.displayID,
		StartedAt: a.now(),
	}
	a.log.Info("login succeeded", zap.String("user", username), zap.String("session", s.ID.String()))
	return s, nil
}
