package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/pkg/pagination"
)

// ItemRepository defines the data access interface for catalog items
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	CreateBatch(ctx context.Context, items []entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	FindByName(ctx context.Context, name string) (*entity.Item, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error)
	ListAll(ctx context.Context) ([]entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
