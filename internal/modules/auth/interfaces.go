package auth

import (
	"context"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}
