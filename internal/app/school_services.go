package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"
)

// houseService implements the HouseService interface
type houseService struct {
	houseRepository houses.HouseRepository
	logger          logger.Logger
}

// NewHouseService creates a new instance of HouseService
func NewHouseService(houseRepository houses.HouseRepository, logger logger.Logger) (houses.HouseService, error) {
	return &houseService{
		houseRepository: houseRepository,
		logger:          logger,
	}, nil
}

func (s *houseService) Create(ctx context.Context, name string) (*houses.House, error) {
	house := &houses.House{Name: name}
	if err := s.houseRepository.Create(ctx, house); err != nil {
		return nil, err
	}
	return house, nil
}

func (s *houseService) List(ctx context.Context, query *paging.Query) ([]*houses.House, error) {
	return s.houseRepository.List(ctx, query)
}

func (s *houseService) GetByID(ctx context.Context, houseID int) (*houses.House, error) {
	return s.houseRepository.GetByID(ctx, houseID)
}

func (s *houseService) CountMembers(ctx context.Context, houseID int) (int64, error) {
	if _, err := s.houseRepository.GetByID(ctx, houseID); err != nil {
		return 0, err
	}
	return s.houseRepository.CountMembers(ctx, houseID)
}

// DeleteByID deletes a house. Its members stay registered without a house.
func (s *houseService) DeleteByID(ctx context.Context, houseID int) error {
	return s.houseRepository.DeleteByID(ctx, houseID)
}

// courseService implements the CourseService interface
type courseService struct {
	courseRepository courses.CourseRepository
	logger           logger.Logger
}

// NewCourseService creates a new instance of CourseService
func NewCourseService(courseRepository courses.CourseRepository, logger logger.Logger) (courses.CourseService, error) {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}, nil
}

func (s *courseService) Create(ctx context.Context, name string) (*courses.Course, error) {
	course := &courses.Course{Name: name}
	if err := s.courseRepository.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context, query *paging.Query) ([]*courses.Course, error) {
	return s.courseRepository.List(ctx, query)
}

func (s *courseService) GetByID(ctx context.Context, courseID int) (*courses.Course, error) {
	return s.courseRepository.GetByID(ctx, courseID)
}

// DeleteByID deletes a course and every enrollment in it.
func (s *courseService) DeleteByID(ctx context.Context, courseID int) error {
	return s.courseRepository.DeleteByID(ctx, courseID)
}

// enrollmentService implements the EnrollmentService interface
type enrollmentService struct {
	enrollmentRepository enrollments.EnrollmentRepository
	logger               logger.Logger
}

// NewEnrollmentService creates a new instance of EnrollmentService
func NewEnrollmentService(enrollmentRepository enrollments.EnrollmentRepository, logger logger.Logger) (enrollments.EnrollmentService, error) {
	return &enrollmentService{
		enrollmentRepository: enrollmentRepository,
		logger:               logger,
	}, nil
}

// Enroll adds a student to a course. An empty grade means not graded yet.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int, grade string) (*enrollments.Enrollment, error) {
	enrollment := &enrollments.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     grade,
	}
	if err := s.enrollmentRepository.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Transcript lists the courses of a student ordered by course id.
func (s *enrollmentService) Transcript(ctx context.Context, studentID int) ([]*enrollments.Enrollment, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("invalid student id %d", studentID)
	}
	return s.enrollmentRepository.List(ctx, &enrollments.EnrollmentQuery{
		Query:     paging.Query{SortBy: "lesson", SortOrder: paging.SortAsc},
		StudentID: studentID,
	})
}

func (s *enrollmentService) List(ctx context.Context, query *enrollments.EnrollmentQuery) ([]*enrollments.Enrollment, error) {
	if query == nil {
		query = &enrollments.EnrollmentQuery{}
	}
	return s.enrollmentRepository.List(ctx, query)
}

// Withdraw removes a student from a course
func (s *enrollmentService) Withdraw(ctx context.Context, studentID, courseID int) error {
	return s.enrollmentRepository.Delete(ctx, studentID, courseID)
}
