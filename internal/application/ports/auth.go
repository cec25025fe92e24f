package ports

import (
	"taxdocs-api/internal/domain/user"
)

type Auth interface {
	GenerateToken(u *user.User, requestPassword string) (string, error)
	HashPassword(password string) (string, error)
}
