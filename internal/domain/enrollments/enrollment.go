// Package enrollments models the attendance of a student in a course, with an optional grade.
package enrollments

import (
	"context"
	"errors"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

var (
	// ErrEnrollmentNotFound is returned when the student is not enrolled in the course.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrAlreadyEnrolled is returned when the (student, course) pair already exists.
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")

	// ErrUnknownReference is returned when the student or the course does not exist.
	ErrUnknownReference = errors.New("unknown student or course")
)

// Enrollment entity. Course is only populated by listings that load it.
type Enrollment struct {
	StudentID int    `validate:"required,min=1"`
	CourseID  int    `validate:"required,min=1"`
	Grade     string `validate:"omitempty,max=2,grade"`
	Course    *courses.Course
}

// Validate for validating Enrollment struct
func (e *Enrollment) Validate() error {
	return validators.Struct(e)
}

// EnrollmentQuery represents filters and paging for listing enrollments
type EnrollmentQuery struct {
	paging.Query
	StudentID int `validate:"omitempty,min=1"`
	CourseID  int `validate:"omitempty,min=1"`
}

// SortableColumns lists the columns an enrollment listing may sort by.
var SortableColumns = []string{"student", "lesson", "grade"}

// Validate for validating EnrollmentQuery struct
func (q *EnrollmentQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return err
	}
	return q.Query.Validate(SortableColumns...)
}

// EnrollmentService defines enrolling students and reading their transcripts.
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int, grade string) (*Enrollment, error)
	// Transcript returns the enrollments of a student with their courses loaded.
	Transcript(ctx context.Context, studentID int) ([]*Enrollment, error)
	List(ctx context.Context, query *EnrollmentQuery) ([]*Enrollment, error)
	Withdraw(ctx context.Context, studentID, courseID int) error
}

// EnrollmentRepository defines the interface for Enrollment-related persistence operations
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	List(ctx context.Context, query *EnrollmentQuery) ([]*Enrollment, error)
	Get(ctx context.Context, studentID, courseID int) (*Enrollment, error)
	Update(ctx context.Context, enrollment *Enrollment) error
	Delete(ctx context.Context, studentID, courseID int) error
}
