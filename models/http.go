package models

// LoginRequest is the typed body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	Token string `json:"token"`
}

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	Users []string `json:"users"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Health statuses reported by GET /health.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
