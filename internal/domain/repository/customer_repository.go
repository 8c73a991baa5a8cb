package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/pkg/pagination"
)

// CustomerRepository defines the data access interface for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	CreateBatch(ctx context.Context, customers []entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	ListAll(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
