package profile

import (
	domain "taxdocs-api/internal/domain/profile"
)

func fromDBModel(model *Profile) *domain.Profile {
	var p = &domain.Profile{
		Name:              model.Name,
		PhoneNo:           model.PhoneNo,
		Address:           model.Address,
		Occupation:        model.Occupation,
		DateOfBirth:       model.DateOfBirth,
		StateOfResidence:  model.StateOfResidence,
		StateTaxAuthority: model.StateTaxAuthority,
		NIN:               model.NIN,

		EmploymentIncome:  model.EmploymentIncome,
		BusinessIncome:    model.BusinessIncome,
		InvestmentIncome:  model.InvestmentIncome,
		OtherIncome:       model.OtherIncome,
		ChargeableGains:   model.ChargeableGains,
		ExemptIncome:      model.ExemptIncome,
		FinalWHTIncome:    model.FinalWHTIncome,
		LossesAllowed:     model.LossesAllowed,
		CapitalAllowances: model.CapitalAllowances,

		NHF:               model.NHF,
		NHIS:              model.NHIS,
		Pension:           model.Pension,
		HouseLoanInterest: model.HouseLoanInterest,
		LifeInsurance:     model.LifeInsurance,
		AnnualRent:        model.AnnualRent,

		EstimatedTax: model.EstimatedTax,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return p
}

// insertArgs matches the placeholder order of InsertProfile and, shifted by
// the user id, UpdateProfileByUserID.
func insertArgs(userID uint64, req *domain.Profile) []any {
	return []any{
		userID,

		req.Name,
		req.PhoneNo,
		req.Address,
		req.Occupation,
		req.DateOfBirth,
		req.StateOfResidence,
		req.StateTaxAuthority,
		req.NIN,

		req.EmploymentIncome,
		req.BusinessIncome,
		req.InvestmentIncome,
		req.OtherIncome,
		req.ChargeableGains,
		req.ExemptIncome,
		req.FinalWHTIncome,
		req.LossesAllowed,
		req.CapitalAllowances,

		req.NHF,
		req.NHIS,
		req.Pension,
		req.HouseLoanInterest,
		req.LifeInsurance,
		req.AnnualRent,

		req.EstimatedTax,
	}
}
