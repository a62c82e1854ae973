package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// sessionService issues and validates opaque session tokens backed by a
// database table. Sessions survive restarts and expire after a fixed TTL.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionService creates a new SessionServicer with the given session
// lifetime.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, ttl: ttl}
}

// hashToken returns the SHA-256 hex digest of a token string.
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// StartSession creates a new session for the user and returns the opaque
// token to hand to the client. Only the token's digest is stored.
func (s *sessionService) StartSession(userID uint) (string, error) {
	token := uuid.NewString()

	session := &models.Session{
		TokenHash: hashToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return token, nil
}

// CurrentUser resolves a token to the owning user ID. Unknown, empty, and
// expired tokens all fail with ErrUnauthenticated; expired rows are deleted
// on sight.
func (s *sessionService) CurrentUser(token string) (uint, error) {
	if token == "" {
		return 0, apperrors.ErrUnauthenticated
	}

	var session models.Session
	if err := s.db.First(&session, "token_hash = ?", hashToken(token)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUnauthenticated
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.db.Delete(&session)
		return 0, apperrors.ErrUnauthenticated
	}

	return session.UserID, nil
}

// EndSession invalidates a session token. Ending an unknown session is a
// no-op.
func (s *sessionService) EndSession(token string) error {
	if token == "" {
		return nil
	}
	if err := s.db.Delete(&models.Session{}, "token_hash = ?", hashToken(token)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// PurgeExpired removes all expired session rows. Called at startup.
func (s *sessionService) PurgeExpired() error {
	if err := s.db.Delete(&models.Session{}, "expires_at < ?", time.Now()).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
