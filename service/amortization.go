package service

import (
	"fmt"
	"math"

	"gcc-tools/domain"
)

type amortization struct {
	Payment       float64
	TotalPayment  float64
	TotalInterest float64
	Months        int
	Schedule      []domain.ScheduleRow
}

// termMonths converts a tenure to whole months. An empty unit means years,
// which is what the forms preselect.
func termMonths(tenure domain.Number, unit domain.TenureUnit) (int, error) {
	t := amount(tenure)

	var months float64
	switch unit {
	case domain.TenureYears, "":
		months = t * MonthsPerYear
	case domain.TenureMonths:
		months = t
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTenureUnit, unit)
	}

	n := int(math.Floor(months))
	if n <= 0 {
		return 0, domain.ErrZeroTerm
	}
	if n > MaxTermMonths {
		return 0, domain.ErrTermTooLong
	}
	return n, nil
}

// amortize computes the equal monthly installment for principal over months
// at annualRatePercent:
//
//	EMI = P·r·(1+r)^N / ((1+r)^N − 1),  r = annual/100/12
//
// With a zero rate the principal is split evenly. Figures that overflow a
// float64 yield ErrResultOutOfRange.
func amortize(principal, annualRatePercent float64, months int) (amortization, error) {
	r := annualRatePercent / 100 / MonthsPerYear
	n := float64(months)

	a := amortization{Months: months}
	if r == 0 {
		a.Payment = principal / n
		a.TotalPayment = principal
		a.TotalInterest = 0
	} else {
		growth := math.Pow(1+r, n)
		a.Payment = principal * r * growth / (growth - 1)
		a.TotalPayment = a.Payment * n
		a.TotalInterest = a.TotalPayment - principal
	}

	if err := checkFinite(a.Payment, a.TotalPayment, a.TotalInterest); err != nil {
		return amortization{}, err
	}

	a.Schedule = yearlySchedule(principal, r, a.Payment, months)
	return a, nil
}

// yearlySchedule folds the monthly amortization into one row per year (the
// last row may cover fewer than 12 months).
func yearlySchedule(principal, monthlyRate, payment float64, months int) []domain.ScheduleRow {
	rows := make([]domain.ScheduleRow, 0, (months+MonthsPerYear-1)/MonthsPerYear)
	balance := principal

	var row domain.ScheduleRow
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		if m == months || principalPart > balance {
			principalPart = balance
		}
		balance -= principalPart

		row.InterestPaid += interest
		row.PrincipalPaid += principalPart

		if m%MonthsPerYear == 0 || m == months {
			row.Year = (m + MonthsPerYear - 1) / MonthsPerYear
			row.Balance = roundTo2Decimals(math.Max(balance, 0))
			row.InterestPaid = roundTo2Decimals(row.InterestPaid)
			row.PrincipalPaid = roundTo2Decimals(row.PrincipalPaid)
			rows = append(rows, row)
			row = domain.ScheduleRow{}
		}
	}
	return rows
}
