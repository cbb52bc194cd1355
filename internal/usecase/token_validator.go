package usecase

import (
	"meeting-rooms/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (userID int64, username string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (int64, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}
	if claims.UserID <= 0 {
		return 0, "", jwt.ErrInvalidToken
	}
	return claims.UserID, claims.Username, nil
}
