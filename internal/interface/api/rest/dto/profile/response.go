package profile

import "time"

type Profile struct {
	Name              string  `json:"name"`
	PhoneNo           *string `json:"phone_no,omitempty"`
	Address           *string `json:"address,omitempty"`
	Occupation        *string `json:"occupation,omitempty"`
	DateOfBirth       *string `json:"date_of_birth,omitempty"`
	StateOfResidence  *string `json:"state_of_residence,omitempty"`
	StateTaxAuthority *string `json:"state_tax_authority,omitempty"`
	NIN               *string `json:"nin,omitempty"`

	EmploymentIncome  float64 `json:"employment_income"`
	BusinessIncome    float64 `json:"business_income"`
	InvestmentIncome  float64 `json:"investment_income"`
	OtherIncome       float64 `json:"other_income"`
	ChargeableGains   float64 `json:"chargeable_gains"`
	ExemptIncome      float64 `json:"exempt_income"`
	FinalWHTIncome    float64 `json:"final_wht_income"`
	LossesAllowed     float64 `json:"losses_allowed"`
	CapitalAllowances float64 `json:"capital_allowances"`

	NHF               float64 `json:"nhf"`
	NHIS              float64 `json:"nhis"`
	Pension           float64 `json:"pension"`
	HouseLoanInterest float64 `json:"house_loan_interest"`
	LifeInsurance     float64 `json:"life_insurance"`
	AnnualRent        float64 `json:"annual_rent"`

	EstimatedTax float64 `json:"estimated_tax"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
