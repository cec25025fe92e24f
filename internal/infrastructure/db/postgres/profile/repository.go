package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "taxdocs-api/internal/domain/profile"
	"taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/db/postgres"
)

var ErrProfileAlreadyExists = errors.New("profile already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchProfile(ctx context.Context, userID user.ID) (*domain.Profile, error) {
	p := new(Profile)
	err := r.db.QueryRow(ctx, SelectProfile, userID).Scan(p.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) CreateProfile(ctx context.Context, userID user.ID, req *domain.Profile) (*domain.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, InsertProfile, insertArgs(uint64(userID), req)...).Scan(p.scanTargets()...)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrProfileAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) UpdateProfile(ctx context.Context, userID user.ID, req *domain.Profile) (*domain.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, UpdateProfileByUserID, insertArgs(uint64(userID), req)...).Scan(p.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) DeleteProfile(ctx context.Context, userID user.ID) (*domain.Profile, error) {
	p := new(Profile)
	err := r.db.QueryRow(ctx, SoftDeleteProfileByUserID, userID).Scan(p.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}
