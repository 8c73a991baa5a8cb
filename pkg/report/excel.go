// Package report builds spreadsheet exports of the catalog and the
// document register.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
)

const sheet = "Sheet1"

// ItemsWorkbook builds an xlsx workbook listing the item catalog.
func ItemsWorkbook(items []entity.Item) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Rate")
	f.SetCellValue(sheet, "C1", "Stock")

	for i, item := range items {
		rowNo := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNo), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNo), item.Rate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNo), item.Stock)
	}

	return f, nil
}

// DocumentsWorkbook builds an xlsx workbook listing saved documents,
// one row per document with an item count rather than the full snapshot.
func DocumentsWorkbook(docs []entity.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetCellValue(sheet, "A1", "Kind")
	f.SetCellValue(sheet, "B1", "Customer")
	f.SetCellValue(sheet, "C1", "Items")
	f.SetCellValue(sheet, "D1", "Total")
	f.SetCellValue(sheet, "E1", "Created At")

	for i, doc := range docs {
		rowNo := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNo), doc.Kind.String())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNo), doc.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNo), len(doc.Items))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNo), doc.Total)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNo), doc.CreatedAt.Format("2006-01-02 15:04"))
	}

	return f, nil
}
