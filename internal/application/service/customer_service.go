package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/repository"
	"github.com/kbhatta/quotify-api/pkg/apperror"
	"github.com/kbhatta/quotify-api/pkg/csvkit"
	"github.com/kbhatta/quotify-api/pkg/pagination"
)

// CustomerService handles customer directory operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the input for creating or updating a customer
type CustomerInput struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	customer := &entity.Customer{
		Name:    name,
		Contact: input.Contact,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.FromStore(err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// SuggestCustomers returns up to limit customers whose names contain
// the query, case-insensitively, excluding an exact match.
func (s *CustomerService) SuggestCustomers(ctx context.Context, query string, limit int) ([]entity.Customer, error) {
	if limit < 1 {
		limit = 5
	}
	if limit > 100 {
		limit = 100
	}

	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	lower := strings.ToLower(query)
	results := make([]entity.Customer, 0, limit)
	for _, customer := range customers {
		name := strings.ToLower(customer.Name)
		if strings.Contains(name, lower) && name != lower {
			results = append(results, customer)
			if len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	customer.Name = name
	customer.Contact = input.Contact

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.FromStore(err)
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.FromStore(err)
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return apperror.FromStore(s.customerRepo.Delete(ctx, id))
}

// DeleteAllCustomers removes the entire directory as one atomic batch
func (s *CustomerService) DeleteAllCustomers(ctx context.Context) error {
	return apperror.FromStore(s.customerRepo.DeleteAll(ctx))
}

// ImportCustomers inserts customers from CSV records. Only a non-empty
// name is required; duplicates are allowed in the directory.
func (s *CustomerService) ImportCustomers(ctx context.Context, records []csvkit.Record) (*ImportSummary, error) {
	summary := &ImportSummary{}
	var toAdd []entity.Customer

	for _, record := range records {
		name := strings.TrimSpace(record.Get("name"))
		if name == "" {
			summary.Skipped++
			continue
		}

		customer := entity.Customer{Name: name}
		if contact := strings.TrimSpace(record.Get("contact")); contact != "" {
			customer.Contact = &contact
		}
		toAdd = append(toAdd, customer)
		summary.Added++
	}

	if err := s.customerRepo.CreateBatch(ctx, toAdd); err != nil {
		return nil, apperror.FromStore(err)
	}
	return summary, nil
}
