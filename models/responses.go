package models

// AuthResponse is the envelope returned by signup and login on success.
// The token is duplicated in the `token` cookie for browser clients.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ErrorResponse is the uniform failure envelope rendered by the central
// error boundary for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for simple informational replies such as
// the health route.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
