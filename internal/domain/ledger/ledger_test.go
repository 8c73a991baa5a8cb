package ledger

import (
	"testing"
)

func testCatalog() Snapshot {
	return Snapshot{
		{Name: "Cement Bag", Rate: 450, Stock: 80},
		{Name: "Steel Rod", Rate: 620, Stock: 35},
		{Name: "Paint Bucket", Rate: 1200, Stock: 12},
	}
}

func TestNewStartsWithSingleBlankRow(t *testing.T) {
	l := New(testCatalog())
	if l.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", l.Len())
	}
	row := l.Rows()[0]
	if row.Item != "" || row.Rate != 0 || row.Qty != 1 || row.Amount != 0 {
		t.Fatalf("unexpected blank row: %+v", row)
	}
	if l.Total() != 0 {
		t.Fatalf("expected zero total, got %v", l.Total())
	}
}

func TestSetItemNameResolvesCaseInsensitively(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "cement bag")

	row := l.Rows()[0]
	if row.Item != "cement bag" {
		t.Fatalf("typed text should be kept verbatim, got %q", row.Item)
	}
	if row.Rate != 450 || row.Stock != 80 {
		t.Fatalf("expected rate/stock from catalog, got %+v", row)
	}
	if row.Amount != 450 {
		t.Fatalf("expected amount 450, got %v", row.Amount)
	}
}

func TestSetItemNameUnresolvedZeroesRow(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "Cement Bag")
	l.SetQty(0, "3")

	// Retyping to an unknown name must zero rate and amount even
	// though qty stays.
	l.SetItemName(0, "Cem")

	row := l.Rows()[0]
	if row.Rate != 0 || row.Stock != 0 || row.Amount != 0 {
		t.Fatalf("unresolved row should be zeroed, got %+v", row)
	}
	if row.Qty != 3 {
		t.Fatalf("qty should survive re-resolution, got %d", row.Qty)
	}
	if l.Total() != 0 {
		t.Fatalf("expected zero total, got %v", l.Total())
	}
}

func TestSetQtyCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"4", 4},
		{" 7 ", 7},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}

	for _, tc := range cases {
		l := New(testCatalog())
		l.SetItemName(0, "Steel Rod")
		l.SetQty(0, tc.raw)
		row := l.Rows()[0]
		if row.Qty != tc.want {
			t.Errorf("qty %q: expected %d, got %d", tc.raw, tc.want, row.Qty)
		}
		if row.Amount != 620*float64(tc.want) {
			t.Errorf("qty %q: expected amount %v, got %v", tc.raw, 620*float64(tc.want), row.Amount)
		}
	}
}

func TestDeleteRowNeverLeavesLedgerEmpty(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "Cement Bag")
	l.AddRow()
	l.SetItemName(1, "Steel Rod")

	l.DeleteRow(0)
	if l.Len() != 1 {
		t.Fatalf("expected 1 row after delete, got %d", l.Len())
	}
	if l.Rows()[0].Item != "Steel Rod" {
		t.Fatalf("wrong row deleted: %+v", l.Rows()[0])
	}

	// Deleting the last row resets to a blank row.
	l.DeleteRow(0)
	if l.Len() != 1 {
		t.Fatalf("expected 1 row after deleting last, got %d", l.Len())
	}
	row := l.Rows()[0]
	if row.Item != "" || row.Qty != 1 || row.Amount != 0 {
		t.Fatalf("expected blank row, got %+v", row)
	}
}

func TestDeleteRowOutOfRangeIgnored(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "Cement Bag")

	l.DeleteRow(-1)
	l.DeleteRow(5)

	if l.Len() != 1 || l.Rows()[0].Item != "Cement Bag" {
		t.Fatalf("out-of-range delete should be a no-op, got %+v", l.Rows())
	}
}

func TestTotalRecomputedAcrossMutations(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "Cement Bag")
	l.SetQty(0, "2")
	l.AddRow()
	l.SetItemName(1, "Paint Bucket")
	l.SetQty(1, "3")

	if got := l.Total(); got != 2*450+3*1200 {
		t.Fatalf("expected total %v, got %v", 2*450+3*1200, got)
	}

	l.DeleteRow(1)
	if got := l.Total(); got != 900 {
		t.Fatalf("expected total 900 after delete, got %v", got)
	}

	l.SetQty(0, "oops")
	if got := l.Total(); got != 450 {
		t.Fatalf("expected total 450 after qty coercion, got %v", got)
	}
}

func TestReplayEquivalentToStepwiseEdits(t *testing.T) {
	inputs := []Input{
		{Item: "Cement Bag", Qty: "2"},
		{Item: "unknown thing", Qty: "9"},
		{Item: "steel rod", Qty: "bad"},
	}

	l := Replay(testCatalog(), inputs)

	if l.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", l.Len())
	}
	rows := l.Rows()
	if rows[0].Amount != 900 {
		t.Fatalf("row 0: expected amount 900, got %v", rows[0].Amount)
	}
	if rows[1].Amount != 0 || rows[1].Qty != 9 {
		t.Fatalf("row 1: unknown item should cost nothing, got %+v", rows[1])
	}
	if rows[2].Qty != 1 || rows[2].Amount != 620 {
		t.Fatalf("row 2: expected coerced qty 1 at rate 620, got %+v", rows[2])
	}
	if l.Total() != 900+620 {
		t.Fatalf("expected total %v, got %v", 900+620, l.Total())
	}
}

func TestReplayEmptyYieldsBlankLedger(t *testing.T) {
	l := Replay(testCatalog(), nil)
	if l.Len() != 1 {
		t.Fatalf("expected single blank row, got %d rows", l.Len())
	}
	if l.Total() != 0 {
		t.Fatalf("expected zero total, got %v", l.Total())
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	l := New(testCatalog())
	l.SetItemName(0, "Cement Bag")

	snap := l.Snapshot()
	l.SetQty(0, "5")

	if snap[0].Qty != 1 {
		t.Fatalf("snapshot should not track later edits, got qty %d", snap[0].Qty)
	}
}

func TestSnapshotResolverPrefersFirstMatch(t *testing.T) {
	catalog := Snapshot{
		{Name: "Wire", Rate: 100, Stock: 5},
		{Name: "wire", Rate: 999, Stock: 50},
	}

	item := catalog.FindByName("WIRE")
	if item == nil || item.Rate != 100 {
		t.Fatalf("expected first catalog match, got %+v", item)
	}
}
