package models

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID        int         `gorm:"primaryKey"`
	Username  string      `gorm:"uniqueIndex;size:80;not null"`
	Password  string      `gorm:"size:64;not null"`
	Name      string      `gorm:"size:80"`
	Address   string      `gorm:"size:100"`
	Magical   bool        `gorm:"not null;default:false"`
	HouseID   *int        `gorm:"index"`
	House     *HouseModel `gorm:"foreignKey:HouseID;constraint:OnDelete:SET NULL"`
	Quidditch bool        `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// AdminLabel is how a user is displayed when referenced by other records.
func (m *UserModel) AdminLabel() string {
	return m.Username
}

// Validate applies the domain rules to records edited through the admin.
func (m *UserModel) Validate() error {
	return m.ToDomain().Validate()
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Name:      m.Name,
		Address:   m.Address,
		Magical:   m.Magical,
		HouseID:   m.HouseID,
		Quidditch: m.Quidditch,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Password = u.Password
	m.Name = u.Name
	m.Address = u.Address
	m.Magical = u.Magical
	m.HouseID = u.HouseID
	m.Quidditch = u.Quidditch
}
