package request

// CustomerRequest represents a create or update customer request
type CustomerRequest struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
}
