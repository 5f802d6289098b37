package courses

import (
	"context"
	"errors"

	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

// ErrCourseNotFound is returned when no course matches the lookup.
var ErrCourseNotFound = errors.New("course not found")

// Course entity
type Course struct {
	ID   int
	Name string `validate:"required,max=100"`
}

// Validate for validating Course struct
func (c *Course) Validate() error {
	return validators.Struct(c)
}

// SortableColumns lists the columns a course listing may sort by.
var SortableColumns = []string{"id", "name"}

// CourseService defines the operations on courses used by the CLI.
type CourseService interface {
	Create(ctx context.Context, name string) (*Course, error)
	List(ctx context.Context, query *paging.Query) ([]*Course, error)
	GetByID(ctx context.Context, courseID int) (*Course, error)
	DeleteByID(ctx context.Context, courseID int) error
}

// CourseRepository defines the interface for Course-related persistence operations
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	List(ctx context.Context, query *paging.Query) ([]*Course, error)
	GetByID(ctx context.Context, courseID int) (*Course, error)
	UpdateByID(ctx context.Context, course *Course) error
	DeleteByID(ctx context.Context, courseID int) error
}
