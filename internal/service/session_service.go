package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/stagefolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultSessionTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials is returned on a wrong admin password. The same
	// error covers every mismatch so callers learn nothing about how close
	// the attempt was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoAdminSecret is returned when no admin password is configured.
	ErrNoAdminSecret = errors.New("no admin secret configured")
)

// SessionService issues, validates and revokes admin sessions. Sessions live
// in the database so any replica can validate any token; expiry is checked
// lazily on lookup and stale rows are deleted when found.
type SessionService struct {
	db           *gorm.DB
	password     string
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

// NewSessionService builds a SessionService gated by the given secret.
// passwordHash (bcrypt) takes precedence over the plain password when both
// are set. A non-positive ttl falls back to 24 hours.
func NewSessionService(gdb *gorm.DB, password, passwordHash string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		db:           gdb,
		password:     password,
		passwordHash: passwordHash,
		ttl:          ttl,
		now:          time.Now,
	}
}

// WithClock overrides the time source, mainly for tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	if now != nil {
		s.now = now
	}
	return s
}

// Login checks the password against the configured secret and, on success,
// persists and returns a new session valid for the configured TTL.
func (s *SessionService) Login(password string) (*db.AdminSession, error) {
	if err := s.checkPassword(password); err != nil {
		return nil, err
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := db.AdminSession{
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &session, nil
}

// Verify reports whether the token identifies a live session. A session found
// past its expiry is deleted on the spot; the store-level cleanup is never
// trusted on its own. The boundary is exclusive: a session expiring exactly
// now is already invalid.
func (s *SessionService) Verify(token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	var session db.AdminSession
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up session: %w", err)
	}

	if !s.now().Before(session.ExpiresAt) {
		// Lazy GC of the stale row; a failure here does not make the
		// token valid.
		s.db.Unscoped().Delete(&session)
		return false, nil
	}

	return true, nil
}

// Logout deletes the session for the token. Logging out an unknown or
// already-revoked token is not an error.
func (s *SessionService) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.db.Unscoped().Where("token = ?", token).Delete(&db.AdminSession{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes every expired session row and returns the count. It is
// run at startup as the bulk counterpart of the lazy per-lookup cleanup.
func (s *SessionService) PurgeExpired() (int64, error) {
	result := s.db.Unscoped().Where("expires_at <= ?", s.now()).Delete(&db.AdminSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *SessionService) checkPassword(password string) error {
	switch {
	case s.passwordHash != "":
		if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	case s.password != "":
		// Hash both sides so the comparison is constant time regardless
		// of length.
		want := sha256.Sum256([]byte(s.password))
		got := sha256.Sum256([]byte(password))
		if subtle.ConstantTimeCompare(want[:], got[:]) != 1 {
			return ErrInvalidCredentials
		}
		return nil
	default:
		return ErrNoAdminSecret
	}
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
