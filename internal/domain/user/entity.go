package user

import (
	"strings"
	"time"
)

// User is an account created by the provisioning command. There is no
// self-service registration.
type User struct {
	id           int64
	name         string
	email        Email
	passwordHash string
	createdAt    time.Time
}

func NewUser(name string, email Email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if passwordHash == "" {
		return nil, ErrMissingPassword
	}
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}, nil
}

func Reconstruct(id int64, name string, email string, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        Email{value: email},
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
