package profile

import (
	"strings"

	"taxdocs-api/internal/domain/profile"
)

func ToResponseProfile(pDomain profile.Profile) Profile {
	var p = Profile{
		Name:              pDomain.Name,
		PhoneNo:           pDomain.PhoneNo,
		Address:           pDomain.Address,
		Occupation:        pDomain.Occupation,
		DateOfBirth:       pDomain.DateOfBirth,
		StateOfResidence:  pDomain.StateOfResidence,
		StateTaxAuthority: pDomain.StateTaxAuthority,
		NIN:               pDomain.NIN,

		EmploymentIncome:  pDomain.EmploymentIncome,
		BusinessIncome:    pDomain.BusinessIncome,
		InvestmentIncome:  pDomain.InvestmentIncome,
		OtherIncome:       pDomain.OtherIncome,
		ChargeableGains:   pDomain.ChargeableGains,
		ExemptIncome:      pDomain.ExemptIncome,
		FinalWHTIncome:    pDomain.FinalWHTIncome,
		LossesAllowed:     pDomain.LossesAllowed,
		CapitalAllowances: pDomain.CapitalAllowances,

		NHF:               pDomain.NHF,
		NHIS:              pDomain.NHIS,
		Pension:           pDomain.Pension,
		HouseLoanInterest: pDomain.HouseLoanInterest,
		LifeInsurance:     pDomain.LifeInsurance,
		AnnualRent:        pDomain.AnnualRent,

		EstimatedTax: pDomain.EstimatedTax,

		CreatedAt: pDomain.CreatedAt,
		UpdatedAt: pDomain.UpdatedAt,
	}

	return p
}

// ToDomainProfile builds the full entity of a create request; absent money
// fields default to zero.
func ToDomainProfile(req Request) profile.Profile {
	var p profile.Profile

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	p.PhoneNo = trimmed(req.PhoneNo)
	p.Address = trimmed(req.Address)
	p.Occupation = trimmed(req.Occupation)
	p.DateOfBirth = trimmed(req.DateOfBirth)
	p.StateOfResidence = trimmed(req.StateOfResidence)
	p.StateTaxAuthority = trimmed(req.StateTaxAuthority)
	p.NIN = trimmed(req.NIN)

	p.EmploymentIncome = deref(req.EmploymentIncome)
	p.BusinessIncome = deref(req.BusinessIncome)
	p.InvestmentIncome = deref(req.InvestmentIncome)
	p.OtherIncome = deref(req.OtherIncome)
	p.ChargeableGains = deref(req.ChargeableGains)
	p.ExemptIncome = deref(req.ExemptIncome)
	p.FinalWHTIncome = deref(req.FinalWHTIncome)
	p.LossesAllowed = deref(req.LossesAllowed)
	p.CapitalAllowances = deref(req.CapitalAllowances)

	p.NHF = deref(req.NHF)
	p.NHIS = deref(req.NHIS)
	p.Pension = deref(req.Pension)
	p.HouseLoanInterest = deref(req.HouseLoanInterest)
	p.LifeInsurance = deref(req.LifeInsurance)
	p.AnnualRent = deref(req.AnnualRent)

	return p
}

// ToDomainUpdate builds a partial update; absent fields stay nil.
func ToDomainUpdate(req Request) profile.Update {
	return profile.Update{
		Name:              trimmed(req.Name),
		PhoneNo:           trimmed(req.PhoneNo),
		Address:           trimmed(req.Address),
		Occupation:        trimmed(req.Occupation),
		DateOfBirth:       trimmed(req.DateOfBirth),
		StateOfResidence:  trimmed(req.StateOfResidence),
		StateTaxAuthority: trimmed(req.StateTaxAuthority),
		NIN:               trimmed(req.NIN),

		EmploymentIncome:  req.EmploymentIncome,
		BusinessIncome:    req.BusinessIncome,
		InvestmentIncome:  req.InvestmentIncome,
		OtherIncome:       req.OtherIncome,
		ChargeableGains:   req.ChargeableGains,
		ExemptIncome:      req.ExemptIncome,
		FinalWHTIncome:    req.FinalWHTIncome,
		LossesAllowed:     req.LossesAllowed,
		CapitalAllowances: req.CapitalAllowances,

		NHF:               req.NHF,
		NHIS:              req.NHIS,
		Pension:           req.Pension,
		HouseLoanInterest: req.HouseLoanInterest,
		LifeInsurance:     req.LifeInsurance,
		AnnualRent:        req.AnnualRent,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
