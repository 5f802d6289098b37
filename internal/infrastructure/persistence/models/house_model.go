package models

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
)

// HouseModel is the GORM database model for houses
type HouseModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:100"`
}

// TableName specifies the table name for GORM
func (HouseModel) TableName() string {
	return "houses"
}

// AdminLabel is how a house is displayed when referenced by other records.
func (m *HouseModel) AdminLabel() string {
	return m.Name
}

// Validate applies the domain rules to records edited through the admin.
func (m *HouseModel) Validate() error {
	return m.ToDomain().Validate()
}

// ToDomain converts GORM model to domain entity
func (m *HouseModel) ToDomain() *houses.House {
	return &houses.House{ID: m.ID, Name: m.Name}
}

// FromDomain converts domain entity to GORM model
func (m *HouseModel) FromDomain(h *houses.House) {
	m.ID = h.ID
	m.Name = h.Name
}
