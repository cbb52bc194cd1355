package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnknownMode      = errors.New("unknown password mode")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Verifier checks a submitted password against the stored credential column.
type Verifier interface {
	Verify(stored, submitted string) error
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, submitted string) error {
	return ComparePassword(stored, submitted)
}

// PlainVerifier compares plaintext credentials. Only for deployments whose
// users table was seeded without hashing.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, submitted string) error {
	if stored == "" || submitted == "" {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		return ErrComparisonFailed
	}
	return nil
}

func NewVerifier(mode string) (Verifier, error) {
	switch mode {
	case "", "bcrypt":
		return BcryptVerifier{}, nil
	case "plain":
		return PlainVerifier{}, nil
	default:
		return nil, ErrUnknownMode
	}
}

// Encode prepares a password for storage under the given mode.
func Encode(mode, password string) (string, error) {
	switch mode {
	case "", "bcrypt":
		return HashPassword(password)
	case "plain":
		if password == "" {
			return "", ErrInvalidPassword
		}
		return password, nil
	default:
		return "", ErrUnknownMode
	}
}
