package profile

const profileColumns = `id, user_id, name, phone_no, address, occupation, date_of_birth,
	  state_of_residence, state_tax_authority, nin,
	  employment_income, business_income, investment_income, other_income,
	  chargeable_gains, exempt_income, final_wht_income, losses_allowed, capital_allowances,
	  nhf, nhis, pension, house_loan_interest, life_insurance, annual_rent,
	  estimated_tax, created_at, updated_at, deleted_at`

const (
	SelectProfile = `
		SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE user_id = $1 AND deleted_at IS NULL
	`
	InsertProfile = `
		INSERT INTO user_profiles (
			user_id, name, phone_no, address, occupation, date_of_birth,
			state_of_residence, state_tax_authority, nin,
			employment_income, business_income, investment_income, other_income,
			chargeable_gains, exempt_income, final_wht_income, losses_allowed, capital_allowances,
			nhf, nhis, pension, house_loan_interest, life_insurance, annual_rent,
			estimated_tax
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING ` + profileColumns + `
	`
	UpdateProfileByUserID = `
		UPDATE user_profiles
		SET name = $2,
		    phone_no = $3,
		    address = $4,
		    occupation = $5,
		    date_of_birth = $6,
		    state_of_residence = $7,
		    state_tax_authority = $8,
		    nin = $9,
		    employment_income = $10,
		    business_income = $11,
		    investment_income = $12,
		    other_income = $13,
		    chargeable_gains = $14,
		    exempt_income = $15,
		    final_wht_income = $16,
		    losses_allowed = $17,
		    capital_allowances = $18,
		    nhf = $19,
		    nhis = $20,
		    pension = $21,
		    house_loan_interest = $22,
		    life_insurance = $23,
		    annual_rent = $24,
		    estimated_tax = $25,
		    updated_at = now()
		WHERE user_id = $1 AND deleted_at IS NULL
		RETURNING ` + profileColumns + `
	`
	SoftDeleteProfileByUserID = `
		UPDATE user_profiles
		SET deleted_at = now()
		WHERE user_id = $1 AND deleted_at IS NULL
		RETURNING ` + profileColumns + `
	`
)
