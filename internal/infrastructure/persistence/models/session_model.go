package models

import (
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
)

// SessionModel is the GORM database model for login sessions
type SessionModel struct {
	ID        string     `gorm:"primaryKey;size:36"`
	UserID    *int       `gorm:"index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CSRFToken string     `gorm:"column:csrf_token;size:64;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		CSRFToken: m.CSRFToken,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.Session) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.CSRFToken = s.CSRFToken
	m.CreatedAt = s.CreatedAt
	m.ExpiresAt = s.ExpiresAt
}
