package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormHouseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHouseRepository creates a new GORM-based HouseRepository implementation
func NewGormHouseRepository(db *gorm.DB, logger logger.Logger) (houses.HouseRepository, error) {
	return &gormHouseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHouseRepository) Create(ctx context.Context, house *houses.House) error {
	if err := house.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HouseModel{}
	model.FromDomain(house)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create house: %w", err)
	}

	house.ID = model.ID
	r.logger.Info("Created house with id ", house.ID)
	return nil
}

func (r *gormHouseRepository) List(ctx context.Context, query *paging.Query) ([]*houses.House, error) {
	if query == nil {
		query = &paging.Query{}
	}
	if err := query.Validate(houses.SortableColumns...); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.HouseModel
	if err := applyPaging(r.db.WithContext(ctx).Model(&models.HouseModel{}), query, "id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch houses: %w", err)
	}

	domainList := make([]*houses.House, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormHouseRepository) GetByID(ctx context.Context, houseID int) (*houses.House, error) {
	var model models.HouseModel
	if err := r.db.WithContext(ctx).Where("id = ?", houseID).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("house with ID %d: %w", houseID, houses.ErrHouseNotFound)
		}
		return nil, fmt.Errorf("failed to fetch house: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormHouseRepository) CountMembers(ctx context.Context, houseID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("house_id = ?", houseID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count members of house %d: %w", houseID, err)
	}
	return count, nil
}

func (r *gormHouseRepository) UpdateByID(ctx context.Context, house *houses.House) error {
	if err := house.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.HouseModel{}
	model.FromDomain(house)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update house: %w", err)
	}

	r.logger.Info("Updated house with id ", house.ID)
	return nil
}

func (r *gormHouseRepository) DeleteByID(ctx context.Context, houseID int) error {
	result := r.db.WithContext(ctx).Where("id = ?", houseID).Delete(&models.HouseModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete house: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("house with ID %d: %w", houseID, houses.ErrHouseNotFound)
	}

	r.logger.Info("Deleted house with id ", houseID)
	return nil
}

// applyPaging adds ORDER BY, LIMIT and OFFSET for a validated query.
func applyPaging(db *gorm.DB, query *paging.Query, defaultOrder string) *gorm.DB {
	if order := query.OrderClause(); order != "" {
		db = db.Order(order)
	} else if defaultOrder != "" {
		db = db.Order(defaultOrder)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}
	return db
}
