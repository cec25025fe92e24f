package document

import (
	"context"

	"github.com/google/uuid"

	"taxdocs-api/internal/domain/user"
)

type Repository interface {
	FetchDocuments(ctx context.Context, userID user.ID, category *Category, taxYear *int, page int) (Documents, error)
	FetchDocumentByID(ctx context.Context, userID user.ID, docUUID uuid.UUID) (*Document, error)
	CreateDocument(ctx context.Context, userID user.ID, req *Document) (*Document, error)
	UpdateDocument(ctx context.Context, userID user.ID, req *Document) (*Document, error)
	DeleteDocument(ctx context.Context, userID user.ID, docUUID uuid.UUID) (*Document, error)
	DeleteDocuments(ctx context.Context, userID user.ID) error
}
