package request

// LoginRequest represents a PIN login request
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}
