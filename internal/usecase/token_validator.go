package usecase

import (
	"context"

	"github.com/KingCastle/Javan/internal/domain/user"
	"github.com/KingCastle/Javan/internal/infra"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/pkg/jwt"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUnknownUser  = errs.New("token user does not exist")
	ErrInactiveUser = errs.New("user is inactive")
)

type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      UserLookup
}

func NewTokenValidator(jwtService *jwt.Service, users UserLookup) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

// ValidateToken takes the role from the users table, so a demotion applies
// before the token expires.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	u, err := t.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, "", ErrUnknownUser
		}
		return uuid.Nil, "", err
	}
	if !u.IsActive {
		return uuid.Nil, "", ErrInactiveUser
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return u.ID, role, nil
}
