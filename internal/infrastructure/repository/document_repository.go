package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
	domainRepo "github.com/kbhatta/quotify-api/internal/domain/repository"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

// List returns documents newest first, the order the register screen
// shows them in.
func (r *documentRepository) List(ctx context.Context, kind *enum.DocumentKind) ([]entity.Document, error) {
	var docs []entity.Document
	query := r.db.WithContext(ctx).Model(&entity.Document{})
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}
	err := query.Order("created_at DESC, id DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepository) Update(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Document{}, "id = ?", id).Error
}

func (r *documentRepository) Count(ctx context.Context, kind enum.DocumentKind) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("kind = ?", kind).
		Count(&total).Error
	return total, err
}

// SumTotals sums the frozen totals of all documents of a kind.
func (r *documentRepository) SumTotals(ctx context.Context, kind enum.DocumentKind) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("kind = ?", kind).
		Select("SUM(total)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
