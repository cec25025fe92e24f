package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"taxdocs-api/internal/application/ports"
	domain "taxdocs-api/internal/domain/profile"
	"taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/mq"
	"taxdocs-api/internal/interface/api/rest/dto/profile"
)

type ProfileService struct {
	profileRepository domain.Repository
	userRepository    user.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewProfileService(
	profileRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ProfileService {
	return &ProfileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (ps *ProfileService) FindProfile(ctx context.Context, userUUID user.UUID) (*domain.Profile, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	p, err := ps.profileRepository.FetchProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (ps *ProfileService) CreateProfile(ctx context.Context, userUUID user.UUID, p domain.Profile) (*domain.Profile, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	p.EstimatedTax = p.EstimateTax()

	out, err := ps.profileRepository.CreateProfile(ctx, id, &p)
	if err != nil {
		return nil, err
	}

	ps.publishProfile(http.MethodPost, userUUID, out)
	ps.mCounter.WithLabelValues("profiles_created_total").Inc()

	return out, nil
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, userUUID user.UUID, upd domain.Update) (*domain.Profile, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	cur, err := ps.profileRepository.FetchProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}

	cur.Apply(upd)
	// the figures changed, so must the estimate
	cur.EstimatedTax = cur.EstimateTax()

	out, err := ps.profileRepository.UpdateProfile(ctx, id, cur)
	if err != nil || out == nil {
		return out, err
	}

	ps.publishProfile(http.MethodPut, userUUID, out)
	ps.mCounter.WithLabelValues("profiles_updated_total").Inc()

	return out, nil
}

func (ps *ProfileService) DeleteProfile(ctx context.Context, userUUID user.UUID) (*domain.Profile, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	out, err := ps.profileRepository.DeleteProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	ps.publishProfile(http.MethodDelete, userUUID, out)
	ps.mCounter.WithLabelValues("profiles_deleted_total").Inc()

	return out, nil
}

func (ps *ProfileService) publishProfile(method string, userUUID user.UUID, p *domain.Profile) {
	ps.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		Entity:  mq.EntityProfile,
		UserID:  userUUID.String(),
		Payload: profile.ToResponseProfile(*p),
	}
}
