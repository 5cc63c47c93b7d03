package domain

type RentalYieldInput struct {
	PropertyValue      Number `json:"property_value"`
	MonthlyRent        Number `json:"monthly_rent"`
	AnnualExpenses     Number `json:"annual_expenses"`
	VacancyRatePercent Number `json:"vacancy_rate_percent"`
}

type RentalYieldResult struct {
	AnnualRent         float64      `json:"annual_rent"`
	AdjustedAnnualRent float64      `json:"adjusted_annual_rent"`
	AnnualExpenses     float64      `json:"annual_expenses"`
	NetAnnualIncome    float64      `json:"net_annual_income"`
	GrossYield         float64      `json:"gross_yield"`
	NetYield           float64      `json:"net_yield"`
	ROI                float64      `json:"roi"`
	Breakdown          []Slice      `json:"breakdown"`
	Lines              []ResultLine `json:"lines"`
}

func DefaultRentalYieldInput() RentalYieldInput {
	return RentalYieldInput{
		PropertyValue:      1000000,
		MonthlyRent:        5000,
		AnnualExpenses:     12000,
		VacancyRatePercent: 5,
	}
}
