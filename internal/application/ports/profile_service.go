package ports

import (
	"context"

	"taxdocs-api/internal/domain/profile"
	"taxdocs-api/internal/domain/user"
)

type ProfileService interface {
	FindProfile(ctx context.Context, userUUID user.UUID) (*profile.Profile, error)
	CreateProfile(ctx context.Context, userUUID user.UUID, p profile.Profile) (*profile.Profile, error)
	UpdateProfile(ctx context.Context, userUUID user.UUID, upd profile.Update) (*profile.Profile, error)
	DeleteProfile(ctx context.Context, userUUID user.UUID) (*profile.Profile, error)
}
