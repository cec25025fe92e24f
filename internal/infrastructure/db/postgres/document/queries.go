package document

const (
	SelectDocuments = `
		SELECT id, uuid, user_id, category, amount, document_name, file_path, tax_year, created_at, updated_at, deleted_at
		FROM documents
		WHERE user_id = $1 AND deleted_at IS NULL
		  AND ($2::document_category IS NULL OR category = $2)
		  AND ($3::int IS NULL OR tax_year = $3)
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($4 - 1) * 50 )
	`
	SelectDocumentByID = `
		SELECT id, uuid, user_id, category, amount, document_name, file_path, tax_year, created_at, updated_at, deleted_at
		FROM documents
		WHERE user_id = $1 AND uuid = $2 AND deleted_at IS NULL
	`
	InsertDocument = `
		INSERT INTO documents (user_id, category, amount, document_name, file_path, tax_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, user_id, category, amount, document_name, file_path, tax_year, created_at, updated_at, deleted_at
	`
	UpdateDocumentByUUID = `
		UPDATE documents
		SET category = $3,
		    amount = $4,
		    document_name = $5,
		    file_path = $6,
		    tax_year = $7,
		    updated_at = now()
		WHERE user_id = $1 AND uuid = $2 AND deleted_at IS NULL
		RETURNING
		  id, uuid, user_id, category, amount, document_name, file_path, tax_year, created_at, updated_at, deleted_at
	`
	SoftDeleteDocumentByUUID = `
		UPDATE documents
		SET deleted_at = now()
		WHERE user_id = $1 AND uuid = $2 AND deleted_at IS NULL
		RETURNING
		  id, uuid, user_id, category, amount, document_name, file_path, tax_year, created_at, updated_at, deleted_at
	`
	SoftDeleteDocuments = `
		UPDATE documents
		SET deleted_at = now()
		WHERE user_id = $1 AND deleted_at IS NULL
	`
)
