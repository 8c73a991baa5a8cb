package request

// LineRequest is one raw line as typed into the document screen. Qty
// stays raw; anything unparseable is coerced to one downstream rather
// than rejected here.
type LineRequest struct {
	Item string   `json:"item"`
	Qty  RawValue `json:"qty"`
}

// DocumentRequest represents a create or update document request
type DocumentRequest struct {
	Kind         string        `json:"kind"`
	CustomerName string        `json:"customer_name"`
	Lines        []LineRequest `json:"lines"`
}

// PreviewRequest carries lines for a dry-run totals computation
type PreviewRequest struct {
	Lines []LineRequest `json:"lines"`
}
