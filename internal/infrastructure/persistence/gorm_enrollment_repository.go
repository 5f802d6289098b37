package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEnrollmentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEnrollmentRepository creates a new GORM-based EnrollmentRepository implementation
func NewGormEnrollmentRepository(db *gorm.DB, logger logger.Logger) (enrollments.EnrollmentRepository, error) {
	return &gormEnrollmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, enrollment *enrollments.Enrollment) error {
	if err := enrollment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EnrollmentModel{}
	model.FromDomain(enrollment)

	if err := r.db.WithContext(ctx).Omit("Student", "Topic").Create(model).Error; err != nil {
		switch {
		case isDuplicateKey(err):
			return enrollments.ErrAlreadyEnrolled
		case isForeignKeyViolation(err):
			return enrollments.ErrUnknownReference
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	r.logger.Info("Enrolled student ", enrollment.StudentID, " in course ", enrollment.CourseID)
	return nil
}

// List returns the matching enrollments with their courses loaded.
func (r *gormEnrollmentRepository) List(ctx context.Context, query *enrollments.EnrollmentQuery) ([]*enrollments.Enrollment, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EnrollmentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EnrollmentModel{}).Preload("Topic")

	if query.StudentID > 0 {
		dbQuery = dbQuery.Where("student = ?", query.StudentID)
	}
	if query.CourseID > 0 {
		dbQuery = dbQuery.Where("lesson = ?", query.CourseID)
	}

	if err := applyPaging(dbQuery, &query.Query, "student asc, lesson asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}

	domainList := make([]*enrollments.Enrollment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEnrollmentRepository) Get(ctx context.Context, studentID, courseID int) (*enrollments.Enrollment, error) {
	var model models.EnrollmentModel
	err := r.db.WithContext(ctx).
		Preload("Topic").
		Where("student = ? AND lesson = ?", studentID, courseID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("student %d in course %d: %w", studentID, courseID, enrollments.ErrEnrollmentNotFound)
		}
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	return model.ToDomain(), nil
}

// Update changes the grade of an existing enrollment.
func (r *gormEnrollmentRepository) Update(ctx context.Context, enrollment *enrollments.Enrollment) error {
	if err := enrollment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.EnrollmentModel{}).
		Where("student = ? AND lesson = ?", enrollment.StudentID, enrollment.CourseID).
		Update("grade", enrollment.Grade)
	if result.Error != nil {
		return fmt.Errorf("failed to update enrollment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("student %d in course %d: %w", enrollment.StudentID, enrollment.CourseID, enrollments.ErrEnrollmentNotFound)
	}

	r.logger.Info("Graded student ", enrollment.StudentID, " in course ", enrollment.CourseID)
	return nil
}

func (r *gormEnrollmentRepository) Delete(ctx context.Context, studentID, courseID int) error {
	result := r.db.WithContext(ctx).
		Where("student = ? AND lesson = ?", studentID, courseID).
		Delete(&models.EnrollmentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete enrollment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("student %d in course %d: %w", studentID, courseID, enrollments.ErrEnrollmentNotFound)
	}

	r.logger.Info("Withdrew student ", studentID, " from course ", courseID)
	return nil
}
