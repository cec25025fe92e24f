package ports

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/google/uuid"

	"taxdocs-api/internal/domain/document"
	"taxdocs-api/internal/domain/user"
)

type DocumentService interface {
	FindDocuments(ctx context.Context, userUUID user.UUID, category *document.Category, taxYear *int, page int) (document.Documents, error)
	CreateDocument(ctx context.Context, userUUID user.UUID, email string, meta document.Document, in *multipart.FileHeader) (*document.Document, error)
	UpdateDocument(ctx context.Context, userUUID user.UUID, email string, docUUID uuid.UUID, upd document.Update, in *multipart.FileHeader) (*document.Document, error)
	DeleteDocument(ctx context.Context, userUUID user.UUID, email string, docUUID uuid.UUID) (*document.Document, error)
	OpenDocumentFile(ctx context.Context, email, relPath string) (io.ReadCloser, int64, error)
}
