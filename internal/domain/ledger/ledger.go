// Package ledger implements the in-progress line-item list a staff
// member edits while composing a quotation or bill. Every mutation
// re-derives rate, amount and the stock hint from a catalog snapshot;
// the total is always recomputed, never cached.
package ledger

import (
	"strconv"
	"strings"

	"github.com/kbhatta/quotify-api/internal/domain/entity"
)

// Resolver looks an item up by case-insensitive exact name. A nil
// result means the typed name matches nothing in the catalog.
type Resolver interface {
	FindByName(name string) *entity.Item
}

// Snapshot is a Resolver over an in-memory catalog slice, fetched once
// at the start of an edit or save. Resolving against a snapshot rather
// than the live store mirrors how the billing screen works: stock read
// at load time, not at save time.
type Snapshot []entity.Item

// FindByName returns the first item whose name matches case-insensitively
func (s Snapshot) FindByName(name string) *entity.Item {
	lower := strings.ToLower(name)
	for i := range s {
		if strings.ToLower(s[i].Name) == lower {
			return &s[i]
		}
	}
	return nil
}

// Input is one raw row as received from the client. Qty is kept as the
// raw string so the default-to-one coercion happens here, in one place.
type Input struct {
	Item string
	Qty  string
}

// Ledger is an ordered, always non-empty sequence of line items.
type Ledger struct {
	rows    []entity.LineItem
	catalog Resolver
}

func blankRow() entity.LineItem {
	return entity.LineItem{Item: "", Rate: 0, Qty: 1, Amount: 0, Stock: 0}
}

// New returns a ledger holding a single blank row.
func New(catalog Resolver) *Ledger {
	return &Ledger{
		rows:    []entity.LineItem{blankRow()},
		catalog: catalog,
	}
}

// Replay builds a ledger by applying the given inputs in order. An
// empty input slice yields the initial single-blank-row ledger.
func Replay(catalog Resolver, inputs []Input) *Ledger {
	l := New(catalog)
	for i, in := range inputs {
		if i > 0 {
			l.AddRow()
		}
		l.SetItemName(i, in.Item)
		l.SetQty(i, in.Qty)
	}
	return l
}

// Len returns the number of rows. Always >= 1.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the current rows.
func (l *Ledger) Rows() []entity.LineItem {
	out := make([]entity.LineItem, len(l.rows))
	copy(out, l.rows)
	return out
}

// AddRow appends a blank row.
func (l *Ledger) AddRow() {
	l.rows = append(l.rows, blankRow())
}

// DeleteRow removes the row at index. Deleting the last remaining row
// resets the ledger to a single blank row instead of leaving it empty.
// Out-of-range indexes are ignored.
func (l *Ledger) DeleteRow(index int) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
	if len(l.rows) == 0 {
		l.rows = []entity.LineItem{blankRow()}
	}
}

// SetItemName sets the free-text item name at index and resolves it
// against the catalog. A resolved name pulls rate and stock hint from
// the catalog item; an unresolved name zeroes rate, stock hint and
// amount so nothing is ever charged for an unknown item.
func (l *Ledger) SetItemName(index int, name string) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	row := &l.rows[index]
	row.Item = name
	if item := l.catalog.FindByName(name); item != nil {
		row.Rate = item.Rate
		row.Stock = item.Stock
	} else {
		row.Rate = 0
		row.Stock = 0
	}
	row.Amount = row.Rate * float64(row.Qty)
}

// SetQty parses the raw quantity input. A value that does not parse as
// a positive integer becomes 1; the input is coerced, never rejected.
func (l *Ledger) SetQty(index int, raw string) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	row := &l.rows[index]
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		qty = 1
	}
	row.Qty = qty
	row.Amount = row.Rate * float64(qty)
}

// Total recomputes the grand total from scratch.
func (l *Ledger) Total() float64 {
	var total float64
	for _, row := range l.rows {
		total += row.Amount
	}
	return total
}

// Snapshot returns a deep copy of the rows for persistence.
func (l *Ledger) Snapshot() entity.LineItems {
	out := make(entity.LineItems, len(l.rows))
	copy(out, l.rows)
	return out
}
