package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"taxdocs-api/internal/domain/document"
	"taxdocs-api/internal/interface/api/rest/dto/auth"
	docDto "taxdocs-api/internal/interface/api/rest/dto/document"
	profileDto "taxdocs-api/internal/interface/api/rest/dto/profile"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	minTaxYear = 1990
	maxTaxYear = 2100
)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateTaxYear parses an optional tax_year query value; empty means
// "no filter".
func ValidateTaxYear(s string) (*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	y, err := strconv.Atoi(s)
	if err != nil || y < minTaxYear || y > maxTaxYear {
		return nil, errors.New("invalid tax_year")
	}

	return &y, nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateSignup(r auth.SignupRequest) map[string]string {
	errs := ValidateLogin(auth.LoginRequest{Email: r.Email, Password: r.Password})
	if errs == nil {
		errs = make(map[string]string)
	}

	name := strings.TrimSpace(r.Name)
	last := strings.TrimSpace(r.Lastname)

	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2–64 characters"
	} else if !isHumanName(name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	if last == "" {
		errs["lastname"] = "lastname is required"
	} else if l := utf8.RuneCountInString(last); l < 2 || l > 64 {
		errs["lastname"] = "lastname length must be 2–64 characters"
	} else if !isHumanName(last) {
		errs["lastname"] = "allowed characters: letters, space, '-', '''"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateDocument checks the required upload form fields; parse errors are
// caught again by the dto mapper, this reports them all at once.
func ValidateDocument(r docDto.Request) map[string]string {
	errs := make(map[string]string)

	cat := strings.TrimSpace(r.Category)
	name := strings.TrimSpace(r.DocumentName)
	amount := strings.TrimSpace(r.Amount)
	year := strings.TrimSpace(r.TaxYear)

	if cat == "" {
		errs["category"] = "category is required"
	} else if _, ok := document.ParseCategory(cat); !ok {
		errs["category"] = "unknown category"
	}

	if name == "" {
		errs["document_name"] = "document_name is required"
	} else if utf8.RuneCountInString(name) > 255 {
		errs["document_name"] = "document_name too long"
	}

	if amount == "" {
		errs["amount"] = "amount is required"
	} else if a, err := strconv.ParseFloat(amount, 64); err != nil || a < 0 {
		errs["amount"] = "amount must be a non-negative number"
	}

	if year != "" {
		if y, err := strconv.Atoi(year); err != nil || y < minTaxYear || y > maxTaxYear {
			errs["relevant_tax_year"] = "invalid relevant_tax_year"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateProfile checks a profile create body: name is required, the
// shared field rules apply.
func ValidateProfile(r profileDto.Request) map[string]string {
	errs := make(map[string]string)

	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "name is required"
	}
	profileFieldErrors(r, errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateProfileUpdate checks a partial update: every field is optional,
// but a name sent explicitly must not be blank.
func ValidateProfileUpdate(r profileDto.Request) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "name must not be empty"
	}
	profileFieldErrors(r, errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func profileFieldErrors(r profileDto.Request, errs map[string]string) {
	if r.Name != nil {
		if n := strings.TrimSpace(*r.Name); utf8.RuneCountInString(n) > 100 {
			errs["name"] = "name too long"
		}
	}

	if r.NIN != nil {
		if nin := strings.TrimSpace(*r.NIN); nin != "" && !isNIN(nin) {
			errs["nin"] = "nin must be 11 digits"
		}
	}

	amounts := map[string]*float64{
		"employment_income":   r.EmploymentIncome,
		"business_income":     r.BusinessIncome,
		"investment_income":   r.InvestmentIncome,
		"other_income":        r.OtherIncome,
		"chargeable_gains":    r.ChargeableGains,
		"exempt_income":       r.ExemptIncome,
		"final_wht_income":    r.FinalWHTIncome,
		"losses_allowed":      r.LossesAllowed,
		"capital_allowances":  r.CapitalAllowances,
		"nhf":                 r.NHF,
		"nhis":                r.NHIS,
		"pension":             r.Pension,
		"house_loan_interest": r.HouseLoanInterest,
		"life_insurance":      r.LifeInsurance,
		"annual_rent":         r.AnnualRent,
	}
	for field, v := range amounts {
		if v != nil && *v < 0 {
			errs[field] = "must be a non-negative number"
		}
	}
}

func isNIN(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
