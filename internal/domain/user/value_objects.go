package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrMissingLogin    = errors.New("login identifier is required")
	ErrMissingPassword = errors.New("password is required")
	ErrInvalidName     = errors.New("name is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Credentials is a login attempt. The identifier is the unique contact column
// (an email, or a bare username on older deployments), so no format is enforced.
type Credentials struct {
	login    string
	password string
}

func NewCredentials(login, password string) (Credentials, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" {
		return Credentials{}, ErrMissingLogin
	}
	if password == "" {
		return Credentials{}, ErrMissingPassword
	}
	return Credentials{login: login, password: password}, nil
}

func (c Credentials) Login() string    { return c.login }
func (c Credentials) Password() string { return c.password }
