package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCourseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCourseRepository creates a new GORM-based CourseRepository implementation
func NewGormCourseRepository(db *gorm.DB, logger logger.Logger) (courses.CourseRepository, error) {
	return &gormCourseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCourseRepository) Create(ctx context.Context, course *courses.Course) error {
	if err := course.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CourseModel{}
	model.FromDomain(course)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	course.ID = model.ID
	r.logger.Info("Created course with id ", course.ID)
	return nil
}

func (r *gormCourseRepository) List(ctx context.Context, query *paging.Query) ([]*courses.Course, error) {
	if query == nil {
		query = &paging.Query{}
	}
	if err := query.Validate(courses.SortableColumns...); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CourseModel
	if err := applyPaging(r.db.WithContext(ctx).Model(&models.CourseModel{}), query, "id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}

	domainList := make([]*courses.Course, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCourseRepository) GetByID(ctx context.Context, courseID int) (*courses.Course, error) {
	var model models.CourseModel
	if err := r.db.WithContext(ctx).Where("id = ?", courseID).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("course with ID %d: %w", courseID, courses.ErrCourseNotFound)
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCourseRepository) UpdateByID(ctx context.Context, course *courses.Course) error {
	if err := course.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CourseModel{}
	model.FromDomain(course)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	r.logger.Info("Updated course with id ", course.ID)
	return nil
}

func (r *gormCourseRepository) DeleteByID(ctx context.Context, courseID int) error {
	result := r.db.WithContext(ctx).Where("id = ?", courseID).Delete(&models.CourseModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("course with ID %d: %w", courseID, courses.ErrCourseNotFound)
	}

	r.logger.Info("Deleted course with id ", courseID)
	return nil
}
