package request

// ItemRequest represents a create or update item request. Rate and
// stock come through as raw values and are validated downstream.
type ItemRequest struct {
	Name  string   `json:"name"`
	Rate  RawValue `json:"rate"`
	Stock RawValue `json:"stock"`
}

// StockAdjustRequest applies a signed delta to an item's stock
type StockAdjustRequest struct {
	Delta *int `json:"delta" binding:"required"`
}
