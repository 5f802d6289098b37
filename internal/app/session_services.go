package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/google/uuid"
)

// csrfTokenBytes is the entropy of a CSRF token; hex encoding doubles it.
const csrfTokenBytes = 32

// sessionService implements the SessionService interface
type sessionService struct {
	sessionRepository sessions.SessionRepository
	signer            sessions.TokenSigner
	maxAge            time.Duration
	now               func() time.Time
	logger            logger.Logger
}

// NewSessionService creates a new instance of SessionService. Sessions live for maxAge.
func NewSessionService(
	sessionRepository sessions.SessionRepository,
	signer sessions.TokenSigner,
	maxAge time.Duration,
	logger logger.Logger,
) (sessions.SessionService, error) {
	if maxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive")
	}
	return &sessionService{
		sessionRepository: sessionRepository,
		signer:            signer,
		maxAge:            maxAge,
		now:               time.Now,
		logger:            logger,
	}, nil
}

// Start creates and stores an anonymous session
func (s *sessionService) Start(ctx context.Context) (*sessions.Session, error) {
	return s.create(ctx, nil)
}

// Resolve returns the session named by a cookie token. Expired sessions are deleted.
func (s *sessionService) Resolve(ctx context.Context, token string) (*sessions.Session, error) {
	sessionID, err := s.signer.Verify(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.now()) {
		if err := s.sessionRepository.DeleteByID(ctx, session.ID); err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
			s.logger.Warn("Failed to delete expired session: ", err)
		}
		return nil, sessions.ErrSessionExpired
	}
	return session, nil
}

// Login revokes current and issues a new session for userID, so a session id
// known before login is useless afterwards.
func (s *sessionService) Login(ctx context.Context, current *sessions.Session, userID int) (*sessions.Session, error) {
	if err := s.revoke(ctx, current); err != nil {
		return nil, err
	}

	session, err := s.create(ctx, &userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User ", userID, " logged in")
	return session, nil
}

// Logout revokes current and starts a new anonymous session
func (s *sessionService) Logout(ctx context.Context, current *sessions.Session) (*sessions.Session, error) {
	if err := s.revoke(ctx, current); err != nil {
		return nil, err
	}
	if current.IsAuthenticated() {
		s.logger.Info("User ", *current.UserID, " logged out")
	}
	return s.create(ctx, nil)
}

// Token signs the cookie value of a session
func (s *sessionService) Token(session *sessions.Session) (string, error) {
	return s.signer.Sign(session.ID, session.ExpiresAt)
}

// PurgeExpired removes every session past its expiry
func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessionRepository.DeleteExpired(ctx, s.now())
}

func (s *sessionService) create(ctx context.Context, userID *int) (*sessions.Session, error) {
	csrfToken, err := cryptography.RandomHex(csrfTokenBytes)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &sessions.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CSRFToken: csrfToken,
		CreatedAt: now,
		ExpiresAt: now.Add(s.maxAge),
	}
	if err := s.sessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) revoke(ctx context.Context, current *sessions.Session) error {
	if current == nil {
		return nil
	}
	if err := s.sessionRepository.DeleteByID(ctx, current.ID); err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// RunSessionJanitor purges expired sessions every interval until ctx is done.
func RunSessionJanitor(ctx context.Context, service sessions.SessionService, interval time.Duration, logger logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := service.PurgeExpired(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Session janitor: ", err)
			}
		}
	}
}
