package models

// AuthResponse is the JSON body returned by the register and login endpoints.
// The same signed token is also set in the Authorization response header.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the uniform JSON error body returned by API handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
