package models

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
)

// CourseModel is the GORM database model for courses
type CourseModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:100"`
}

// TableName specifies the table name for GORM
func (CourseModel) TableName() string {
	return "courses"
}

// AdminLabel is how a course is displayed when referenced by other records.
func (m *CourseModel) AdminLabel() string {
	return m.Name
}

// Validate applies the domain rules to records edited through the admin.
func (m *CourseModel) Validate() error {
	return m.ToDomain().Validate()
}

// ToDomain converts GORM model to domain entity
func (m *CourseModel) ToDomain() *courses.Course {
	return &courses.Course{ID: m.ID, Name: m.Name}
}

// FromDomain converts domain entity to GORM model
func (m *CourseModel) FromDomain(c *courses.Course) {
	m.ID = c.ID
	m.Name = c.Name
}
