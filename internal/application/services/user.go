package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"taxdocs-api/internal/application/ports"
	"taxdocs-api/internal/domain/document"
	domain "taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/mq"
	"taxdocs-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository     domain.Repository
	documentRepository document.Repository
	store              ports.FileStore
	mq                 ports.RabbitMQ
	mCounter           *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	documentRepository document.Repository,
	store ports.FileStore,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:     userRepository,
		documentRepository: documentRepository,
		store:              store,
		mq:                 mq,
		mCounter:           mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			Entity:  mq.EntityUser,
			UserID:  uRet.UUID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, userUUID domain.UUID) error {
	id, err := us.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return err
	}

	// todo: should be run in transaction

	if err = us.documentRepository.DeleteDocuments(ctx, id); err != nil {
		return err
	}
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if u != nil {
		// records are gone, now the bytes
		if err = us.store.Cleanup(ctx, u.Email); err != nil {
			return err
		}

		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			Entity:  mq.EntityUser,
			UserID:  u.UUID.String(),
			Payload: user.ToResponseUser(*u),
		}

		us.mCounter.WithLabelValues("user_deleted_total").Inc()
	}

	return nil
}
