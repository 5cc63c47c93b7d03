package service

const (
	MaxTermMonths = 600 // 50 years

	// Zakat
	NisabGoldGrams   = 85
	NisabSilverGrams = 595
	ZakatRate        = 0.025

	// Salary
	GOSIRateEmployee = 0.10
	GOSIRateEmployer = 0.12 // informational, never deducted
	MonthsPerYear    = 12

	// Loan eligibility estimate: monthly capacity over a fixed 20 year horizon.
	EligibilityHorizonYears = 20

	MaxInvoiceItems = 200
)

// SupportedVATRates are the GCC rates offered by the VAT calculator:
// 15% Saudi Arabia, 5% UAE / Bahrain / Oman, 0% zero-rated.
var SupportedVATRates = []float64{15, 5, 0}
