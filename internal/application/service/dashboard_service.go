package service

import (
	"context"

	"github.com/kbhatta/quotify-api/internal/domain/enum"
	"github.com/kbhatta/quotify-api/internal/domain/repository"
	"github.com/kbhatta/quotify-api/pkg/apperror"
)

// DashboardService aggregates counts and revenue for the home screen
type DashboardService struct {
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	documentRepo repository.DocumentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(itemRepo repository.ItemRepository, customerRepo repository.CustomerRepository, documentRepo repository.DocumentRepository) *DashboardService {
	return &DashboardService{
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		documentRepo: documentRepo,
	}
}

// DashboardStats is the summary shown after login. Revenue counts
// bills only; quotations are offers, not sales.
type DashboardStats struct {
	Items         int64   `json:"items"`
	Customers     int64   `json:"customers"`
	Quotations    int64   `json:"quotations"`
	Bills         int64   `json:"bills"`
	BilledRevenue float64 `json:"billed_revenue"`
}

// GetStats collects the dashboard numbers
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	items, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	quotations, err := s.documentRepo.Count(ctx, enum.DocumentKindQuotation)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	bills, err := s.documentRepo.Count(ctx, enum.DocumentKindBill)
	if err != nil {
		return nil, apperror.FromStore(err)
	}
	revenue, err := s.documentRepo.SumTotals(ctx, enum.DocumentKindBill)
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	return &DashboardStats{
		Items:         items,
		Customers:     customers,
		Quotations:    quotations,
		Bills:         bills,
		BilledRevenue: revenue,
	}, nil
}
