package core

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
