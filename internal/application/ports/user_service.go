package ports

import (
	"context"

	"taxdocs-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
}
