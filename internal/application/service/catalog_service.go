package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/repository"
	"github.com/kbhatta/quotify-api/pkg/apperror"
	"github.com/kbhatta/quotify-api/pkg/csvkit"
	"github.com/kbhatta/quotify-api/pkg/pagination"
)

// CatalogService handles item catalog operations
type CatalogService struct {
	itemRepo repository.ItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo repository.ItemRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// ItemInput represents the input for creating or updating an item.
// Rate and Stock arrive as raw strings from form fields.
type ItemInput struct {
	Name  string
	Rate  string
	Stock string
}

func (in *ItemInput) validate() (float64, int, []apperror.FieldError) {
	var fieldErrors []apperror.FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(in.Rate), 64)
	if err != nil || rate < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "rate", Message: "Enter a valid rate"})
	}

	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Enter a valid stock"})
	}

	return rate, stock, fieldErrors
}

// CreateItem creates a new catalog item. Names must be unique
// case-insensitively; the ledger resolves by name, so duplicates would
// make resolution ambiguous.
func (s *CatalogService) CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	rate, stock, fieldErrors := input.validate()
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.itemRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	item := &entity.Item{
		Name:  strings.TrimSpace(input.Name),
		Rate:  rate,
		Stock: stock,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperror.FromStore(err)
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// FindItemByName looks up an item by case-insensitive exact name
func (s *CatalogService) FindItemByName(ctx context.Context, name string) (*entity.Item, error) {
	item, err := s.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	return item, nil
}

// ListItems lists items with search and pagination
func (s *CatalogService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ListAllItems returns the full catalog in iteration order
func (s *CatalogService) ListAllItems(ctx context.Context) ([]entity.Item, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	return items, nil
}

// SuggestItems returns up to limit items whose names contain the query,
// case-insensitively, in catalog iteration order. An item whose name
// exactly equals the query is excluded so a fully typed name does not
// suggest itself.
func (s *CatalogService) SuggestItems(ctx context.Context, query string, limit int) ([]entity.Item, error) {
	if limit < 1 {
		limit = 5
	}
	if limit > 100 {
		limit = 100
	}

	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	lower := strings.ToLower(query)
	results := make([]entity.Item, 0, limit)
	for _, item := range items {
		name := strings.ToLower(item.Name)
		if strings.Contains(name, lower) && name != lower {
			results = append(results, item)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// UpdateItem updates an existing item
func (s *CatalogService) UpdateItem(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	rate, stock, fieldErrors := input.validate()
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.itemRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Rate = rate
	item.Stock = stock

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, apperror.FromStore(err)
	}
	return item, nil
}

// AdjustStock applies a delta to an item's stock. The read and the
// write are two separate store operations with nothing in between: two
// sessions selling the same item can both read stale stock and lose an
// update. Stock is not floored at zero either. Both are knowingly
// carried over from the system being replaced.
func (s *CatalogService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	item.Stock += delta
	if err := s.itemRepo.UpdateStock(ctx, id, item.Stock); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Item")
		}
		return nil, apperror.FromStore(err)
	}
	return item, nil
}

// DeleteItem deletes an item
func (s *CatalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.FromStore(err)
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return apperror.FromStore(s.itemRepo.Delete(ctx, id))
}

// DeleteAllItems removes the entire catalog as one atomic batch
func (s *CatalogService) DeleteAllItems(ctx context.Context) error {
	return apperror.FromStore(s.itemRepo.DeleteAll(ctx))
}

// ImportSummary reports the outcome of a CSV import. Bad rows are
// counted, never fatal.
type ImportSummary struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportItems inserts catalog items from CSV records. A row is added
// when it has a non-empty name, a parseable non-negative rate and
// stock, and its normalized name is absent from the catalog as loaded
// at the start of the import. Rows are not cross-checked against each
// other within the batch. Accepted rows are committed atomically.
func (s *CatalogService) ImportItems(ctx context.Context, records []csvkit.Record) (*ImportSummary, error) {
	existing, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	existingNames := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		existingNames[strings.ToLower(item.Name)] = struct{}{}
	}

	summary := &ImportSummary{}
	var toAdd []entity.Item

	for _, record := range records {
		name := strings.TrimSpace(record.Get("name"))
		if name == "" {
			summary.Skipped++
			continue
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(record.Get("rate")), 64)
		if err != nil || rate < 0 {
			summary.Skipped++
			continue
		}

		stock, err := strconv.Atoi(strings.TrimSpace(record.Get("stock")))
		if err != nil || stock < 0 {
			summary.Skipped++
			continue
		}

		if _, dup := existingNames[strings.ToLower(name)]; dup {
			summary.Skipped++
			continue
		}

		toAdd = append(toAdd, entity.Item{Name: name, Rate: rate, Stock: stock})
		summary.Added++
	}

	if err := s.itemRepo.CreateBatch(ctx, toAdd); err != nil {
		return nil, apperror.FromStore(err)
	}
	return summary, nil
}
