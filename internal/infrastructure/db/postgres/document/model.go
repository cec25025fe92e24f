package document

import (
	"time"

	"github.com/google/uuid"
)

type (
	Document struct {
		ID     uint64
		UUID   uuid.UUID
		UserID uint64

		Category     string
		Amount       float64
		DocumentName string
		FilePath     string
		TaxYear      *int

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Documents []*Document
)
