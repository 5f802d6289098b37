package houses

import (
	"context"
	"errors"

	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

// ErrHouseNotFound is returned when no house matches the lookup.
var ErrHouseNotFound = errors.New("house not found")

// House entity
type House struct {
	ID   int
	Name string `validate:"required,max=100"`
}

// Validate for validating House struct
func (h *House) Validate() error {
	return validators.Struct(h)
}

// SortableColumns lists the columns a house listing may sort by.
var SortableColumns = []string{"id", "name"}

// HouseService defines the operations on houses used by the CLI and the index page.
type HouseService interface {
	Create(ctx context.Context, name string) (*House, error)
	List(ctx context.Context, query *paging.Query) ([]*House, error)
	GetByID(ctx context.Context, houseID int) (*House, error)
	// CountMembers returns how many users belong to the house.
	CountMembers(ctx context.Context, houseID int) (int64, error)
	DeleteByID(ctx context.Context, houseID int) error
}

// HouseRepository defines the interface for House-related persistence operations
type HouseRepository interface {
	Create(ctx context.Context, house *House) error
	List(ctx context.Context, query *paging.Query) ([]*House, error)
	GetByID(ctx context.Context, houseID int) (*House, error)
	CountMembers(ctx context.Context, houseID int) (int64, error)
	UpdateByID(ctx context.Context, house *House) error
	DeleteByID(ctx context.Context, houseID int) error
}
