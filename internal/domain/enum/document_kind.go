package enum

import "database/sql/driver"

// DocumentKind distinguishes the two persisted document collections.
// Saving a bill decrements catalog stock; saving a quotation never does.
type DocumentKind string

const (
	DocumentKindQuotation DocumentKind = "quotation"
	DocumentKindBill      DocumentKind = "bill"
)

func (k DocumentKind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the known document kinds
func (k DocumentKind) Valid() bool {
	return k == DocumentKindQuotation || k == DocumentKindBill
}

func (k DocumentKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *DocumentKind) Scan(value interface{}) error {
	if value == nil {
		*k = DocumentKindQuotation
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = DocumentKind(v)
	case []byte:
		*k = DocumentKind(v)
	}
	return nil
}
