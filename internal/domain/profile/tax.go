package profile

// Personal income tax per the Nigeria Tax Act 2025: total income (Section
// 28) less eligible deductions (Section 30), then the Fourth Schedule
// progressive bands.

const (
	rentReliefRate = 0.20
	rentReliefCap  = 500_000
)

type taxBand struct {
	width float64
	rate  float64
}

// Fourth Schedule bands; income above the last band is taxed at topRate.
var taxBands = []taxBand{
	{width: 800_000, rate: 0},
	{width: 2_200_000, rate: 0.15},
	{width: 9_000_000, rate: 0.18},
	{width: 13_000_000, rate: 0.21},
	{width: 25_000_000, rate: 0.23},
}

const topRate = 0.25

// TotalIncome aggregates the income figures, net of exemptions, income
// already taxed at source, allowed losses and capital allowances. Never
// negative.
func (p Profile) TotalIncome() float64 {
	total := p.EmploymentIncome +
		p.BusinessIncome +
		p.InvestmentIncome +
		p.OtherIncome +
		p.ChargeableGains -
		p.ExemptIncome -
		p.FinalWHTIncome -
		p.LossesAllowed -
		p.CapitalAllowances

	if total < 0 {
		return 0
	}
	return total
}

// EligibleDeductions sums the statutory reliefs; rent relief is 20% of
// annual rent capped at 500,000.
func (p Profile) EligibleDeductions() float64 {
	rentRelief := rentReliefRate * p.AnnualRent
	if rentRelief > rentReliefCap {
		rentRelief = rentReliefCap
	}

	return p.NHF +
		p.NHIS +
		p.Pension +
		p.HouseLoanInterest +
		p.LifeInsurance +
		rentRelief
}

func (p Profile) ChargeableIncome() float64 {
	ci := p.TotalIncome() - p.EligibleDeductions()
	if ci < 0 {
		return 0
	}
	return ci
}

// EstimateTax runs the chargeable income through the progressive bands.
func (p Profile) EstimateTax() float64 {
	remaining := p.ChargeableIncome()

	var tax float64
	for _, b := range taxBands {
		slice := remaining
		if slice > b.width {
			slice = b.width
		}
		tax += slice * b.rate
		remaining -= slice
		if remaining <= 0 {
			return tax
		}
	}

	return tax + remaining*topRate
}
