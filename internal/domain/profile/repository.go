package profile

import (
	"context"

	"taxdocs-api/internal/domain/user"
)

type Repository interface {
	FetchProfile(ctx context.Context, userID user.ID) (*Profile, error)
	CreateProfile(ctx context.Context, userID user.ID, req *Profile) (*Profile, error)
	UpdateProfile(ctx context.Context, userID user.ID, req *Profile) (*Profile, error)
	DeleteProfile(ctx context.Context, userID user.ID) (*Profile, error)
}
