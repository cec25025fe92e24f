package profile

import "time"

type Profile struct {
	ID     uint64
	UserID uint64

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

	EstimatedTax float64

	CreatedAt time.Time
	UpdatedAt time.Time

	DeletedAt *time.Time
}

// scanTargets keeps the four query sites on one column order.
func (p *Profile) scanTargets() []any {
	return []any{
		&p.ID,
		&p.UserID,

		&p.Name,
		&p.PhoneNo,
		&p.Address,
		&p.Occupation,
		&p.DateOfBirth,
		&p.StateOfResidence,
		&p.StateTaxAuthority,
		&p.NIN,

		&p.EmploymentIncome,
		&p.BusinessIncome,
		&p.InvestmentIncome,
		&p.OtherIncome,
		&p.ChargeableGains,
		&p.ExemptIncome,
		&p.FinalWHTIncome,
		&p.LossesAllowed,
		&p.CapitalAllowances,

		&p.NHF,
		&p.NHIS,
		&p.Pension,
		&p.HouseLoanInterest,
		&p.LifeInsurance,
		&p.AnnualRent,

		&p.EstimatedTax,

		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	}
}
