//go:build unit
// +build unit

package sessions

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CSRFToken: strings.Repeat("ab", 32),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSession_Validate(t *testing.T) {
	assert.NoError(t, newTestSession().Validate())

	invalidID := newTestSession()
	invalidID.ID = "not-a-uuid"
	assert.Error(t, invalidID.Validate())

	shortToken := newTestSession()
	shortToken.CSRFToken = "abcd"
	assert.Error(t, shortToken.Validate())

	backwards := newTestSession()
	backwards.ExpiresAt = backwards.CreatedAt.Add(-time.Minute)
	assert.Error(t, backwards.Validate())
}

func TestSession_State(t *testing.T) {
	session := newTestSession()
	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsExpired(time.Now()))
	assert.True(t, session.IsExpired(session.ExpiresAt))

	userID := 7
	session.UserID = &userID
	assert.True(t, session.IsAuthenticated())

	var missing *Session
	assert.False(t, missing.IsAuthenticated())
}
