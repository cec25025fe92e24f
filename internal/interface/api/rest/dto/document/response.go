package document

import (
	"time"

	"github.com/google/uuid"
)

type (
	Document struct {
		UUID         uuid.UUID `json:"uuid"`
		Category     string    `json:"category"`
		Amount       float64   `json:"amount"`
		DocumentName string    `json:"document_name"`
		FilePath     string    `json:"file_path"`
		DownloadURL  string    `json:"download_url"`
		TaxYear      *int      `json:"relevant_tax_year,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
	Documents    []Document
	ResponseData struct {
		Data Documents `json:"data"`
	}
)
