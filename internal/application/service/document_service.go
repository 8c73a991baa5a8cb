package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
	"github.com/kbhatta/quotify-api/internal/domain/ledger"
	"github.com/kbhatta/quotify-api/internal/domain/repository"
	"github.com/kbhatta/quotify-api/pkg/apperror"
)

// DocumentService handles quotations and bills: composing them from raw
// line inputs, finalizing them, and the stock side effects of billing.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	itemRepo     repository.ItemRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo repository.DocumentRepository, itemRepo repository.ItemRepository) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		itemRepo:     itemRepo,
	}
}

// DocumentInput represents the input for creating or updating a document
type DocumentInput struct {
	Kind         string
	CustomerName string
	Lines        []ledger.Input
}

func (in *DocumentInput) validate() (enum.DocumentKind, []apperror.FieldError) {
	var fieldErrors []apperror.FieldError

	kind := enum.DocumentKind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if !kind.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "kind", Message: "Kind must be quotation or bill"})
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}

	return kind, fieldErrors
}

// snapshot fetches the catalog once for a compose or save pass
func (s *DocumentService) snapshot(ctx context.Context) (ledger.Snapshot, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	return ledger.Snapshot(items), nil
}

// Preview replays raw line inputs against the current catalog and
// returns the derived rows and total without persisting anything.
type Preview struct {
	Rows  []entity.LineItem `json:"rows"`
	Total float64           `json:"total"`
}

// PreviewDocument computes rows and total for in-progress edits
func (s *DocumentService) PreviewDocument(ctx context.Context, lines []ledger.Input) (*Preview, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	led := ledger.Replay(snap, lines)
	return &Preview{Rows: led.Rows(), Total: led.Total()}, nil
}

// CreateDocument finalizes a quotation or bill. For a bill, stock is
// decremented per resolved line using the quantities and stock figures
// captured in the catalog snapshot; a line whose adjustment fails is
// logged and skipped, and the document is saved regardless. Unresolved
// lines never touch stock.
func (s *DocumentService) CreateDocument(ctx context.Context, input *DocumentInput) (*entity.Document, error) {
	kind, fieldErrors := input.validate()
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	led := ledger.Replay(snap, input.Lines)

	if kind == enum.DocumentKindBill {
		s.decrementStock(ctx, snap, led.Rows())
	}

	doc := &entity.Document{
		Kind:         kind,
		CustomerName: strings.TrimSpace(input.CustomerName),
		Items:        led.Snapshot(),
		Total:        led.Total(),
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, apperror.FromStore(err)
	}
	return doc, nil
}

// decrementStock writes snapshotStock - qty for each resolved line.
// Each write is its own store call; there is no transaction spanning
// the adjustments and the document insert, and the absolute write
// means concurrent bills against the same item can lose an update.
// That matches the behavior of the system this replaces.
func (s *DocumentService) decrementStock(ctx context.Context, snap ledger.Snapshot, rows []entity.LineItem) {
	for _, row := range rows {
		item := snap.FindByName(row.Item)
		if item == nil {
			continue
		}
		if err := s.itemRepo.UpdateStock(ctx, item.ID, row.Stock-row.Qty); err != nil {
			log.Printf("stock update failed for item %q: %v", row.Item, err)
		}
	}
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	return doc, nil
}

// ListDocuments returns documents newest first, optionally filtered by
// kind and by a case-insensitive substring match on the customer name.
func (s *DocumentService) ListDocuments(ctx context.Context, kind *enum.DocumentKind, search string) ([]entity.Document, error) {
	docs, err := s.documentRepo.List(ctx, kind)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	if search = strings.TrimSpace(search); search == "" {
		return docs, nil
	}

	lower := strings.ToLower(search)
	filtered := make([]entity.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.CustomerName), lower) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

// UpdateDocument replaces a document's customer and lines, re-deriving
// rows and total from the current catalog. Editing never touches
// stock, not even for bills; only the original save adjusts it.
func (s *DocumentService) UpdateDocument(ctx context.Context, id uuid.UUID, input *DocumentInput) (*entity.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}

	kind, fieldErrors := input.validate()
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	led := ledger.Replay(snap, input.Lines)

	now := time.Now()
	doc.Kind = kind
	doc.CustomerName = strings.TrimSpace(input.CustomerName)
	doc.Items = led.Snapshot()
	doc.Total = led.Total()
	doc.UpdatedAt = &now

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, apperror.FromStore(err)
	}
	return doc, nil
}

// DeleteDocument deletes a document. Deleting a bill does not restore
// the stock it consumed.
func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.FromStore(err)
	}
	if doc == nil {
		return apperror.NewNotFoundError("Document")
	}
	return apperror.FromStore(s.documentRepo.Delete(ctx, id))
}
