package admin

import (
	"context"
	"fmt"
	"slices"

	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// RegisterDefaultViews adds the user, house, course and classes views.
// User passwords entered in the admin are hashed with hasher.
func RegisterDefaultViews(a *Admin, db *gorm.DB, hasher users.PasswordHasher) error {
	userView, err := NewModelView(db, &models.UserModel{},
		WithName("User"),
		WithExcludedListColumns("password"),
		WithPasswordFields("password"),
		WithBeforeSave(HashPasswordHook(hasher)),
	)
	if err != nil {
		return fmt.Errorf("failed to create user view: %w", err)
	}

	houseView, err := NewModelView(db, &models.HouseModel{}, WithName("House"))
	if err != nil {
		return fmt.Errorf("failed to create house view: %w", err)
	}

	courseView, err := NewModelView(db, &models.CourseModel{}, WithName("Course"))
	if err != nil {
		return fmt.Errorf("failed to create course view: %w", err)
	}

	classesView, err := NewModelView(db, &models.EnrollmentModel{}, WithName("Classes"))
	if err != nil {
		return fmt.Errorf("failed to create classes view: %w", err)
	}

	for _, v := range []*ModelView{userView, houseView, courseView, classesView} {
		if err := a.AddView(v); err != nil {
			return err
		}
	}
	return nil
}

// HashPasswordHook replaces a password typed into the user form with its hash
func HashPasswordHook(hasher users.PasswordHasher) BeforeSaveFunc {
	return func(_ context.Context, record any, changed []string) error {
		user, ok := record.(*models.UserModel)
		if !ok || !slices.Contains(changed, "password") || user.Password == "" {
			return nil
		}
		hash, err := hasher.Hash(user.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
		return nil
	}
}
