package service

import (
	"math"

	"gcc-tools/domain"
)

type RentalYieldService struct{}

func NewRentalYieldService() *RentalYieldService {
	return &RentalYieldService{}
}

// CalculateYield returns gross and net yield as percentages of the property
// value. Net yield and ROI are the same figure. Vacancy is capped at 100%.
func (s *RentalYieldService) CalculateYield(input domain.RentalYieldInput) (domain.RentalYieldResult, error) {
	value := amount(input.PropertyValue)
	if value == 0 {
		return domain.RentalYieldResult{}, domain.ErrZeroPropertyValue
	}

	vacancy := math.Min(amount(input.VacancyRatePercent), 100)
	expenses := amount(input.AnnualExpenses)

	annualRent := amount(input.MonthlyRent) * MonthsPerYear
	adjusted := annualRent * (1 - vacancy/100)
	net := adjusted - expenses

	grossYield := annualRent / value * 100
	netYield := net / value * 100
	if err := checkFinite(annualRent, adjusted, net, grossYield, netYield); err != nil {
		return domain.RentalYieldResult{}, err
	}

	lines := (&lineBuilder{}).
		percent("gross_yield", "Gross Rental Yield / العائد الإجمالي", grossYield).
		percent("net_yield", "Net Rental Yield / العائد الصافي", netYield).
		money("annual_rent", "Annual Income / الدخل السنوي", annualRent).
		money("net_annual_income", "Net Annual Income / صافي الدخل السنوي", net).
		percent("roi", "ROI / العائد على الاستثمار", netYield).
		build()

	return domain.RentalYieldResult{
		AnnualRent:         annualRent,
		AdjustedAnnualRent: adjusted,
		AnnualExpenses:     expenses,
		NetAnnualIncome:    net,
		GrossYield:         grossYield,
		NetYield:           netYield,
		ROI:                netYield,
		Breakdown: nonZeroSlices(
			domain.Slice{Name: "Net Income", Value: net},
			domain.Slice{Name: "Expenses", Value: expenses},
		),
		Lines: lines,
	}, nil
}
