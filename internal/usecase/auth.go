package usecase

import (
	"context"
	"log/slog"

	"meeting-rooms/internal/domain/user"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/pkg/errs"
	"meeting-rooms/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

type LoginResult struct {
	// empty when token issuing is disabled
	Token string
	User  *user.User
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
}

type authUseCaseImpl struct {
	users       UserReadStore
	verifier    password.Verifier
	issuer      TokenIssuer
	issueTokens bool
	logger      *slog.Logger
}

// NewAuthUseCase builds the login flow. A nil issuer or issueTokens=false
// returns the identity payload only.
func NewAuthUseCase(users UserReadStore, verifier password.Verifier, issuer TokenIssuer, issueTokens bool, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		users:       users,
		verifier:    verifier,
		issuer:      issuer,
		issueTokens: issueTokens && issuer != nil,
		logger:      logger,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	u, err := a.users.FindByLogin(ctx, credentials.Login())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrUserNotFound, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.verifier.Verify(u.PasswordHash(), credentials.Password()); err != nil {
		a.logger.InfoContext(ctx, "login rejected", slog.Int64("user_id", u.ID()))
		return nil, ErrInvalidCredentials
	}

	result := &LoginResult{User: u}
	if !a.issueTokens {
		return result, nil
	}

	token, err := a.issuer.GenerateToken(u.ID(), u.Name())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	result.Token = token
	return result, nil
}
