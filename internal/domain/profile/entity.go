package profile

import "time"

type (
	// Profile holds the taxpayer's identity details and the yearly income
	// and deduction figures the tax estimate is computed from. One profile
	// per user.
	Profile struct {
		Name              string
		PhoneNo           *string
		Address           *string
		Occupation        *string
		DateOfBirth       *string
		StateOfResidence  *string
		StateTaxAuthority *string
		NIN               *string

		EmploymentIncome  float64
		BusinessIncome    float64
		InvestmentIncome  float64
		OtherIncome       float64
		ChargeableGains   float64
		ExemptIncome      float64
		FinalWHTIncome    float64
		LossesAllowed     float64
		CapitalAllowances float64

		NHF               float64
		NHIS              float64
		Pension           float64
		HouseLoanInterest float64
		LifeInsurance     float64
		AnnualRent        float64

		// EstimatedTax is derived; recomputed on every write.
		EstimatedTax float64

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}

	// Update carries the optional fields of a partial update; nil means
	// "leave as is".
	Update struct {
		Name              *string
		PhoneNo           *string
		Address           *string
		Occupation        *string
		DateOfBirth       *string
		StateOfResidence  *string
		StateTaxAuthority *string
		NIN               *string

		EmploymentIncome  *float64
		BusinessIncome    *float64
		InvestmentIncome  *float64
		OtherIncome       *float64
		ChargeableGains   *float64
		ExemptIncome      *float64
		FinalWHTIncome    *float64
		LossesAllowed     *float64
		CapitalAllowances *float64

		NHF               *float64
		NHIS              *float64
		Pension           *float64
		HouseLoanInterest *float64
		LifeInsurance     *float64
		AnnualRent        *float64
	}
)

// Apply overlays the set fields of upd onto p.
func (p *Profile) Apply(upd Update) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.PhoneNo != nil {
		p.PhoneNo = upd.PhoneNo
	}
	if upd.Address != nil {
		p.Address = upd.Address
	}
	if upd.Occupation != nil {
		p.Occupation = upd.Occupation
	}
	if upd.DateOfBirth != nil {
		p.DateOfBirth = upd.DateOfBirth
	}
	if upd.StateOfResidence != nil {
		p.StateOfResidence = upd.StateOfResidence
	}
	if upd.StateTaxAuthority != nil {
		p.StateTaxAuthority = upd.StateTaxAuthority
	}
	if upd.NIN != nil {
		p.NIN = upd.NIN
	}

	if upd.EmploymentIncome != nil {
		p.EmploymentIncome = *upd.EmploymentIncome
	}
	if upd.BusinessIncome != nil {
		p.BusinessIncome = *upd.BusinessIncome
	}
	if upd.InvestmentIncome != nil {
		p.InvestmentIncome = *upd.InvestmentIncome
	}
	if upd.OtherIncome != nil {
		p.OtherIncome = *upd.OtherIncome
	}
	if upd.ChargeableGains != nil {
		p.ChargeableGains = *upd.ChargeableGains
	}
	if upd.ExemptIncome != nil {
		p.ExemptIncome = *upd.ExemptIncome
	}
	if upd.FinalWHTIncome != nil {
		p.FinalWHTIncome = *upd.FinalWHTIncome
	}
	if upd.LossesAllowed != nil {
		p.LossesAllowed = *upd.LossesAllowed
	}
	if upd.CapitalAllowances != nil {
		p.CapitalAllowances = *upd.CapitalAllowances
	}

	if upd.NHF != nil {
		p.NHF = *upd.NHF
	}
	if upd.NHIS != nil {
		p.NHIS = *upd.NHIS
	}
	if upd.Pension != nil {
		p.Pension = *upd.Pension
	}
	if upd.HouseLoanInterest != nil {
		p.HouseLoanInterest = *upd.HouseLoanInterest
	}
	if upd.LifeInsurance != nil {
		p.LifeInsurance = *upd.LifeInsurance
	}
	if upd.AnnualRent != nil {
		p.AnnualRent = *upd.AnnualRent
	}
}
