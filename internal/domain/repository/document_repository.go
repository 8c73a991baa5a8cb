package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
)

// DocumentRepository defines the data access interface for saved
// quotations and bills. List returns newest first; a nil kind spans
// both collections.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, kind *enum.DocumentKind) ([]entity.Document, error)
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, kind enum.DocumentKind) (int64, error)
	SumTotals(ctx context.Context, kind enum.DocumentKind) (float64, error)
}
