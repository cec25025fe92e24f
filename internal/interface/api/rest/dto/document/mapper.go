package document

import (
	"errors"
	"strconv"
	"strings"

	"taxdocs-api/internal/domain/document"
)

// DownloadURLPrefix is where the file-serving endpoint lives; the stored
// relative path is appended verbatim.
const DownloadURLPrefix = "/api/v1/documents/files/"

func ToResponseDocument(dDomain document.Document) Document {
	var d = Document{
		UUID:         dDomain.UUID,
		Category:     string(dDomain.Category),
		Amount:       dDomain.Amount,
		DocumentName: dDomain.DocumentName,
		FilePath:     dDomain.FilePath,
		DownloadURL:  DownloadURLPrefix + dDomain.FilePath,
		TaxYear:      dDomain.TaxYear,
		CreatedAt:    dDomain.CreatedAt,
		UpdatedAt:    dDomain.UpdatedAt,
	}

	return d
}

func ToResponseDocuments(dsDomain document.Documents) Documents {
	ds := make(Documents, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponseDocument(*d)
	}

	return ds
}

func ToDomainDocument(req Request) (document.Document, error) {
	cat, ok := document.ParseCategory(strings.TrimSpace(req.Category))
	if !ok {
		return document.Document{}, errors.New("invalid category")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil {
		return document.Document{}, errors.New("invalid amount, want a number")
	}

	d := document.Document{
		Category:     cat,
		Amount:       amount,
		DocumentName: strings.TrimSpace(req.DocumentName),
	}

	if y := strings.TrimSpace(req.TaxYear); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return document.Document{}, errors.New("invalid relevant_tax_year, want a year")
		}
		d.TaxYear = &year
	}

	return d, nil
}

// ToDomainUpdate builds a partial update; empty form values stay nil.
func ToDomainUpdate(req Request) (document.Update, error) {
	var upd document.Update

	if c := strings.TrimSpace(req.Category); c != "" {
		cat, ok := document.ParseCategory(c)
		if !ok {
			return document.Update{}, errors.New("invalid category")
		}
		upd.Category = &cat
	}
	if a := strings.TrimSpace(req.Amount); a != "" {
		amount, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return document.Update{}, errors.New("invalid amount, want a number")
		}
		upd.Amount = &amount
	}
	if n := strings.TrimSpace(req.DocumentName); n != "" {
		upd.DocumentName = &n
	}
	if y := strings.TrimSpace(req.TaxYear); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return document.Update{}, errors.New("invalid relevant_tax_year, want a year")
		}
		upd.TaxYear = &year
	}

	return upd, nil
}
