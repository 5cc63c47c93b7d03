package service

import (
	"math"

	"gcc-tools/domain"
)

type MortgageService struct{}

func NewMortgageService() *MortgageService {
	return &MortgageService{}
}

// CalculateMortgage amortizes the property price less the down payment. A
// down payment above the price leaves nothing to borrow; a zero price reports
// a 0% down payment share.
func (s *MortgageService) CalculateMortgage(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	months, err := termMonths(input.Tenure, input.TenureUnit)
	if err != nil {
		return domain.MortgageResult{}, err
	}

	price := amount(input.PropertyPrice)
	down := amount(input.DownPayment)
	loanAmount := math.Max(price-down, 0)

	downPercent := 0.0
	if price > 0 {
		downPercent = down / price * 100
	}

	a, err := amortize(loanAmount, amount(input.AnnualRatePercent), months)
	if err != nil {
		return domain.MortgageResult{}, err
	}
	if err := checkFinite(downPercent); err != nil {
		return domain.MortgageResult{}, err
	}

	lines := (&lineBuilder{}).
		money("loan_amount", "Loan Amount / مبلغ القرض", loanAmount).
		money("monthly_payment", "Monthly EMI / القسط الشهري", a.Payment).
		money("down_payment", "Down Payment / الدفعة الأولى", down).
		percent("down_payment_percent", "Down Payment (%) / الدفعة الأولى (%)", downPercent).
		money("total_interest", "Total Interest / إجمالي الفائدة", a.TotalInterest).
		money("total_payment", "Total Payment / إجمالي المبلغ", a.TotalPayment).
		build()

	return domain.MortgageResult{
		LoanAmount:         loanAmount,
		MonthlyPayment:     a.Payment,
		TotalInterest:      a.TotalInterest,
		TotalPayment:       a.TotalPayment,
		DownPaymentPercent: downPercent,
		TotalMonths:        a.Months,
		Schedule:           a.Schedule,
		Lines:              lines,
	}, nil
}
