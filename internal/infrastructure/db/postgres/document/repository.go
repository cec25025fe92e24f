package document

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"taxdocs-api/internal/domain/document"
	"taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) document.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchDocuments(
	ctx context.Context,
	userID user.ID,
	category *document.Category,
	taxYear *int,
	page int,
) (document.Documents, error) {
	var cat *string
	if category != nil {
		s := string(*category)
		cat = &s
	}

	rows, err := r.db.Query(ctx, SelectDocuments, userID, cat, taxYear, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Documents
	for rows.Next() {
		d := new(Document)

		if err = rows.Scan(
			&d.ID,
			&d.UUID,
			&d.UserID,

			&d.Category,
			&d.Amount,
			&d.DocumentName,
			&d.FilePath,
			&d.TaxYear,

			&d.CreatedAt,
			&d.UpdatedAt,
			&d.DeletedAt,
		); err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ds), nil
}

func (r *Repository) FetchDocumentByID(ctx context.Context, userID user.ID, docUUID uuid.UUID) (*document.Document, error) {
	d := new(Document)
	err := r.db.QueryRow(ctx, SelectDocumentByID, userID, docUUID.String()).Scan(
		&d.ID,
		&d.UUID,
		&d.UserID,

		&d.Category,
		&d.Amount,
		&d.DocumentName,
		&d.FilePath,
		&d.TaxYear,

		&d.CreatedAt,
		&d.UpdatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), err
}

func (r *Repository) CreateDocument(ctx context.Context, userID user.ID, req *document.Document) (*document.Document, error) {
	d := new(Document)

	err := r.db.QueryRow(
		ctx,
		InsertDocument,
		userID, string(req.Category), req.Amount, req.DocumentName, req.FilePath, req.TaxYear,
	).Scan(
		&d.ID,
		&d.UUID,
		&d.UserID,

		&d.Category,
		&d.Amount,
		&d.DocumentName,
		&d.FilePath,
		&d.TaxYear,

		&d.CreatedAt,
		&d.UpdatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(d), err
}

func (r *Repository) UpdateDocument(ctx context.Context, userID user.ID, req *document.Document) (*document.Document, error) {
	d := new(Document)

	err := r.db.QueryRow(
		ctx,
		UpdateDocumentByUUID,
		userID, req.UUID.String(), string(req.Category), req.Amount, req.DocumentName, req.FilePath, req.TaxYear,
	).Scan(
		&d.ID,
		&d.UUID,
		&d.UserID,

		&d.Category,
		&d.Amount,
		&d.DocumentName,
		&d.FilePath,
		&d.TaxYear,

		&d.CreatedAt,
		&d.UpdatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), err
}

func (r *Repository) DeleteDocument(ctx context.Context, userID user.ID, docUUID uuid.UUID) (*document.Document, error) {
	d := new(Document)
	err := r.db.QueryRow(ctx, SoftDeleteDocumentByUUID, userID, docUUID.String()).Scan(
		&d.ID,
		&d.UUID,
		&d.UserID,

		&d.Category,
		&d.Amount,
		&d.DocumentName,
		&d.FilePath,
		&d.TaxYear,

		&d.CreatedAt,
		&d.UpdatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), err
}

func (r *Repository) DeleteDocuments(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(ctx, SoftDeleteDocuments, userID)
	return err
}
