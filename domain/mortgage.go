package domain

type MortgageInput struct {
	PropertyPrice     Number     `json:"property_price"`
	DownPayment       Number     `json:"down_payment"`
	AnnualRatePercent Number     `json:"annual_rate_percent"`
	Tenure            Number     `json:"tenure"`
	TenureUnit        TenureUnit `json:"tenure_unit"`
}

type MortgageResult struct {
	LoanAmount         float64       `json:"loan_amount"`
	MonthlyPayment     float64       `json:"monthly_payment"`
	TotalInterest      float64       `json:"total_interest"`
	TotalPayment       float64       `json:"total_payment"`
	DownPaymentPercent float64       `json:"down_payment_percent"`
	TotalMonths        int           `json:"total_months"`
	Schedule           []ScheduleRow `json:"schedule"`
	Lines              []ResultLine  `json:"lines"`
}

func DefaultMortgageInput() MortgageInput {
	return MortgageInput{
		PropertyPrice:     2000000,
		DownPayment:       400000,
		AnnualRatePercent: 5.5,
		Tenure:            20,
		TenureUnit:        TenureYears,
	}
}
