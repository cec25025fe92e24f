package services

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"taxdocs-api/internal/application/ports"
	domain "taxdocs-api/internal/domain/document"
	"taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/mq"
	"taxdocs-api/internal/interface/api/rest/dto/document"
)

type DocumentService struct {
	store              ports.FileStore
	documentRepository domain.Repository
	userRepository     user.Repository
	mq                 ports.RabbitMQ
	mCounter           *prometheus.CounterVec
}

func NewDocumentService(
	store ports.FileStore,
	documentRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.DocumentService {
	return &DocumentService{
		store:              store,
		documentRepository: documentRepository,
		userRepository:     userRepository,
		mq:                 mq,
		mCounter:           mCounter,
	}
}

func (ds *DocumentService) FindDocuments(
	ctx context.Context,
	userUUID user.UUID,
	category *domain.Category,
	taxYear *int,
	page int,
) (domain.Documents, error) {
	id, err := ds.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	docs, err := ds.documentRepository.FetchDocuments(ctx, id, category, taxYear, page)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (ds *DocumentService) CreateDocument(
	ctx context.Context,
	userUUID user.UUID,
	email string,
	meta domain.Document,
	in *multipart.FileHeader,
) (*domain.Document, error) {
	id, err := ds.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	relPath, err := ds.store.Save(ctx, email, in.Filename, f)
	if err != nil {
		return nil, err
	}
	meta.FilePath = relPath

	out, err := ds.documentRepository.CreateDocument(ctx, id, &meta)
	if err != nil {
		// the record never existed, so the bytes must not either
		_ = ds.store.Delete(ctx, email, relPath)
		return nil, err
	}

	ds.publish(http.MethodPost, userUUID, out)
	ds.mCounter.WithLabelValues("documents_created_total").Inc()

	return out, nil
}

func (ds *DocumentService) UpdateDocument(
	ctx context.Context,
	userUUID user.UUID,
	email string,
	docUUID uuid.UUID,
	upd domain.Update,
	in *multipart.FileHeader,
) (*domain.Document, error) {
	id, err := ds.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	cur, err := ds.documentRepository.FetchDocumentByID(ctx, id, docUUID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}

	oldPath := cur.FilePath
	newPath := ""
	if in != nil {
		f, err := in.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if newPath, err = ds.store.Save(ctx, email, in.Filename, f); err != nil {
			return nil, err
		}
		cur.FilePath = newPath
	}

	if upd.Category != nil {
		cur.Category = *upd.Category
	}
	if upd.Amount != nil {
		cur.Amount = *upd.Amount
	}
	if upd.DocumentName != nil {
		cur.DocumentName = *upd.DocumentName
	}
	if upd.TaxYear != nil {
		cur.TaxYear = upd.TaxYear
	}

	out, err := ds.documentRepository.UpdateDocument(ctx, id, cur)
	if err != nil || out == nil {
		if newPath != "" {
			_ = ds.store.Delete(ctx, email, newPath)
		}
		return out, err
	}

	// the record now points at the replacement, the superseded file goes
	if newPath != "" && oldPath != newPath {
		_ = ds.store.Delete(ctx, email, oldPath)
	}

	ds.publish(http.MethodPut, userUUID, out)
	ds.mCounter.WithLabelValues("documents_updated_total").Inc()

	return out, nil
}

func (ds *DocumentService) DeleteDocument(
	ctx context.Context,
	userUUID user.UUID,
	email string,
	docUUID uuid.UUID,
) (*domain.Document, error) {
	id, err := ds.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	out, err := ds.documentRepository.DeleteDocument(ctx, id, docUUID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	// record deletion wins; leftover bytes are swept by account cleanup
	_ = ds.store.Delete(ctx, email, out.FilePath)

	ds.publish(http.MethodDelete, userUUID, out)
	ds.mCounter.WithLabelValues("documents_deleted_total").Inc()

	return out, nil
}

func (ds *DocumentService) OpenDocumentFile(ctx context.Context, email, relPath string) (io.ReadCloser, int64, error) {
	return ds.store.Open(ctx, email, relPath)
}

func (ds *DocumentService) publish(method string, userUUID user.UUID, d *domain.Document) {
	ds.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		Entity:  mq.EntityDocument,
		UserID:  userUUID.String(),
		Payload: document.ToResponseDocument(*d),
	}
}
