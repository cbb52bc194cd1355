package request

import (
	"strings"

	"meeting-rooms/internal/domain/user"
)

// LoginRequest accepts "username" as an alias for "email" for older clients.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

func (r *LoginRequest) Login() string {
	if login := strings.TrimSpace(r.Email); login != "" {
		return login
	}
	return strings.TrimSpace(r.Username)
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Login(), r.Password)
}
