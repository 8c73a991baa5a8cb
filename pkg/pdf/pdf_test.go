package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
)

func TestRenderProducesPDF(t *testing.T) {
	doc := &entity.Document{
		Kind:         enum.DocumentKindBill,
		CustomerName: "Asha Traders",
		Items: entity.LineItems{
			{Item: "Cement Bag", Rate: 450, Qty: 10, Amount: 4500, Stock: 80},
			{Item: "unknown thing", Rate: 0, Qty: 2, Amount: 0, Stock: 0},
		},
		Total:     4500,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:8])
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	doc := &entity.Document{
		Kind:         enum.DocumentKindQuotation,
		CustomerName: "Binod Hardware",
		Items:        entity.LineItems{{Item: "", Rate: 0, Qty: 1, Amount: 0, Stock: 0}},
		CreatedAt:    time.Now(),
	}

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected PDF bytes")
	}
}
