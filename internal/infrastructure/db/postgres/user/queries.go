package user

const (
	SelectUserByID = `
		SELECT id, uuid, email, password_hash, role, name, lastname, created_at, updated_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, uuid, email, password_hash, role, name, lastname, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role, name, lastname)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, uuid, email, password_hash, role, name, lastname, created_at, updated_at, deleted_at
	`
	SelectIdByUUID     = `SELECT id FROM users WHERE uuid = $1::uuid`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING
		  id, uuid, email, password_hash, role, name, lastname, created_at, updated_at, deleted_at
	`
)
