package service

import (
	"context"
	"testing"

	"github.com/kbhatta/quotify-api/internal/infrastructure/repository"
	"github.com/kbhatta/quotify-api/pkg/apperror"
	"github.com/kbhatta/quotify-api/pkg/csvkit"
)

func newCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	return NewCustomerService(repository.NewCustomerRepository(setupTestDB(t)))
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.CreateCustomer(context.Background(), &CustomerInput{Name: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 422 {
		t.Fatalf("expected 422, got %d", appErr.Code)
	}
}

func TestCreateCustomerAllowsDuplicateNames(t *testing.T) {
	svc := newCustomerService(t)

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateCustomer(context.Background(), &CustomerInput{Name: "Asha Traders"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
}

func TestSuggestCustomersExcludesExactMatch(t *testing.T) {
	svc := newCustomerService(t)
	for _, name := range []string{"Asha", "Asha Traders", "Asha Hardware", "Binod"} {
		if _, err := svc.CreateCustomer(context.Background(), &CustomerInput{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	results, err := svc.SuggestCustomers(context.Background(), "asha", 5)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(results))
	}
	for _, customer := range results {
		if customer.Name == "Asha" {
			t.Fatal("exact match should be excluded")
		}
	}
}

func TestImportCustomersRequiresNameOnly(t *testing.T) {
	svc := newCustomerService(t)

	data := []byte("name,contact\nAsha Traders,9841000000\n,9841111111\nBinod Hardware,\n")
	records, err := csvkit.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	summary, err := svc.ImportCustomers(context.Background(), records)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.Added != 2 || summary.Skipped != 1 {
		t.Fatalf("expected 2 added / 1 skipped, got %+v", summary)
	}
}
