// Package pdf renders a finalized document as a downloadable PDF.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
)

// Render produces the PDF bytes for a saved quotation or bill.
func Render(doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(14).
		WithRightMargin(14).
		Build()

	m := maroto.New(cfg)

	title := "Quotation"
	if doc.Kind == enum.DocumentKindBill {
		title = "Bill"
	}

	m.AddRow(12, text.NewCol(12, title, props.Text{
		Size:  18,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Customer Name: %s", doc.CustomerName), props.Text{
		Size: 12,
	}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Date: %s", doc.CreatedAt.Format("02/01/2006")), props.Text{
		Size: 12,
	}))
	m.AddRow(4, line.NewCol(12))

	// Table header
	m.AddRow(8,
		text.NewCol(6, "Item Name", props.Text{Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Align: align.Center}),
	)

	for _, item := range doc.Items {
		m.AddRow(7,
			text.NewCol(6, item.Item, props.Text{Align: align.Center}),
			text.NewCol(2, fmt.Sprintf("Rs. %.2f", item.Rate), props.Text{Align: align.Center}),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Align: align.Center}),
			text.NewCol(2, fmt.Sprintf("Rs. %.2f", item.Amount), props.Text{Align: align.Center}),
		)
	}

	m.AddRow(12, text.NewCol(12, fmt.Sprintf("Total: Rs. %.2f", doc.Total), props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Right,
	}))

	m.AddRow(14, text.NewCol(12, "Thank you for your business!", props.Text{
		Size:  10,
		Align: align.Center,
	}))

	result, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return result.GetBytes(), nil
}
