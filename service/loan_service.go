package service

import (
	"math"

	"gcc-tools/domain"
)

type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// CalculateLoan returns the monthly EMI, totals and a yearly schedule.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	months, err := termMonths(input.Tenure, input.TenureUnit)
	if err != nil {
		return domain.LoanResult{}, err
	}

	principal := amount(input.Principal)
	a, err := amortize(principal, amount(input.AnnualRatePercent), months)
	if err != nil {
		return domain.LoanResult{}, err
	}

	lines := (&lineBuilder{}).
		money("monthly_payment", "Monthly EMI / القسط الشهري", a.Payment).
		money("principal", "Loan Amount / مبلغ القرض", principal).
		money("total_interest", "Total Interest / إجمالي الفائدة", a.TotalInterest).
		money("total_payment", "Total Payment / إجمالي المبلغ", a.TotalPayment).
		build()

	return domain.LoanResult{
		MonthlyPayment: a.Payment,
		TotalInterest:  a.TotalInterest,
		TotalPayment:   a.TotalPayment,
		TotalMonths:    a.Months,
		Schedule:       a.Schedule,
		Lines:          lines,
	}, nil
}

// CheckEligibility estimates how much a bank would lend: the installment
// capacity is the income left after obligations times the bank's limit, and
// the maximum loan is that capacity over a fixed 20 year horizon (no interest).
func (s *LoanService) CheckEligibility(
	input domain.LoanEligibilityInput,
) (domain.LoanEligibilityResult, error) {

	available := math.Max(amount(input.MonthlyIncome)-amount(input.ExistingObligations), 0)
	monthly := available * (amount(input.BankLimitPercent) / 100)
	yearly := monthly * MonthsPerYear
	maxLoan := monthly * MonthsPerYear * EligibilityHorizonYears
	if err := checkFinite(available, monthly, yearly, maxLoan); err != nil {
		return domain.LoanEligibilityResult{}, err
	}

	lines := (&lineBuilder{}).
		money("available_income", "Available Income / الدخل المتاح", available).
		money("monthly_emi_capacity", "Monthly EMI Capacity / قدرة القسط الشهري", monthly).
		money("yearly_emi_capacity", "Yearly EMI Capacity / قدرة القسط السنوي", yearly).
		money("estimated_max_loan", "Estimated Max Loan / الحد الأقصى المقدر للقرض", maxLoan).
		build()

	return domain.LoanEligibilityResult{
		AvailableIncome:    available,
		MonthlyEMICapacity: monthly,
		YearlyEMICapacity:  yearly,
		EstimatedMaxLoan:   maxLoan,
		Lines:              lines,
	}, nil
}
