package models

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
)

// EnrollmentModel is the GORM database model for the classes table,
// keyed by the (student, lesson) pair.
type EnrollmentModel struct {
	StudentID int          `gorm:"column:student;primaryKey;autoIncrement:false"`
	CourseID  int          `gorm:"column:lesson;primaryKey;autoIncrement:false"`
	Grade     string       `gorm:"size:2"`
	Student   *UserModel   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Topic     *CourseModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (EnrollmentModel) TableName() string {
	return "classes"
}

// Validate applies the domain rules to records edited through the admin.
func (m *EnrollmentModel) Validate() error {
	e := m.ToDomain()
	e.Course = nil
	return e.Validate()
}

// ToDomain converts GORM model to domain entity. The course is set when Topic was preloaded.
func (m *EnrollmentModel) ToDomain() *enrollments.Enrollment {
	e := &enrollments.Enrollment{
		StudentID: m.StudentID,
		CourseID:  m.CourseID,
		Grade:     m.Grade,
	}
	if m.Topic != nil {
		e.Course = m.Topic.ToDomain()
	}
	return e
}

// FromDomain converts domain entity to GORM model
func (m *EnrollmentModel) FromDomain(e *enrollments.Enrollment) {
	m.StudentID = e.StudentID
	m.CourseID = e.CourseID
	m.Grade = e.Grade
}
