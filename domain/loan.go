package domain

type LoanInput struct {
	Principal         Number     `json:"principal"`
	AnnualRatePercent Number     `json:"annual_rate_percent"`
	Tenure            Number     `json:"tenure"`
	TenureUnit        TenureUnit `json:"tenure_unit"`
}

type LoanResult struct {
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalInterest  float64       `json:"total_interest"`
	TotalPayment   float64       `json:"total_payment"`
	TotalMonths    int           `json:"total_months"`
	Schedule       []ScheduleRow `json:"schedule"`
	Lines          []ResultLine  `json:"lines"`
}

type LoanEligibilityInput struct {
	MonthlyIncome       Number `json:"monthly_income"`
	ExistingObligations Number `json:"existing_obligations"`
	BankLimitPercent    Number `json:"bank_limit_percent"`
}

type LoanEligibilityResult struct {
	AvailableIncome    float64      `json:"available_income"`
	MonthlyEMICapacity float64      `json:"monthly_emi_capacity"`
	YearlyEMICapacity  float64      `json:"yearly_emi_capacity"`
	EstimatedMaxLoan   float64      `json:"estimated_max_loan"`
	Lines              []ResultLine `json:"lines"`
}

func DefaultLoanInput() LoanInput {
	return LoanInput{
		Principal:         500000,
		AnnualRatePercent: 5.5,
		Tenure:            20,
		TenureUnit:        TenureYears,
	}
}

func DefaultLoanEligibilityInput() LoanEligibilityInput {
	return LoanEligibilityInput{
		MonthlyIncome:       15000,
		ExistingObligations: 2000,
		BankLimitPercent:    33,
	}
}
