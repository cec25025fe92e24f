package document

import (
	"time"

	"github.com/google/uuid"
)

// Category mirrors the document_category enum in Postgres.
type Category string

const (
	CategoryIncome              Category = "income"
	CategoryOtherIncomes        Category = "other_incomes"
	CategoryOperatingExpenses   Category = "operating_expenses"
	CategoryOtherExpenses       Category = "other_expenses"
	CategoryLifeInsurance       Category = "life_insurance"
	CategoryHouseRent           Category = "house_rent"
	CategoryStatutoryDeductions Category = "statutory_deductions"
)

var categories = map[Category]struct{}{
	CategoryIncome:              {},
	CategoryOtherIncomes:        {},
	CategoryOperatingExpenses:   {},
	CategoryOtherExpenses:       {},
	CategoryLifeInsurance:       {},
	CategoryHouseRent:           {},
	CategoryStatutoryDeductions: {},
}

func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := categories[c]
	return c, ok
}

type (
	Document struct {
		UUID         uuid.UUID
		Category     Category
		Amount       float64
		DocumentName string
		// FilePath is the relative stored path returned by the file
		// store; the owning user's directory is its first element.
		FilePath string
		TaxYear  *int

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Documents []*Document

	// Update carries the optional fields of a metadata update; nil means
	// "leave as is".
	Update struct {
		Category     *Category
		Amount       *float64
		DocumentName *string
		TaxYear      *int
	}
)
