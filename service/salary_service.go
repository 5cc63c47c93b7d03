package service

import (
	"fmt"

	"gcc-tools/domain"
)

type SalaryService struct{}

func NewSalaryService() *SalaryService {
	return &SalaryService{}
}

// CalculateSalary derives net monthly and yearly pay:
//
//	net = gross + allowances − employee GOSI − other deductions
//
// The employer's 12% GOSI share is reported but never deducted. Nationality is
// informational and does not change the figures.
func (s *SalaryService) CalculateSalary(input domain.SalaryInput) (domain.SalaryResult, error) {
	switch input.Nationality {
	case domain.NationalitySaudi, domain.NationalityExpat, "":
	default:
		return domain.SalaryResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidNationality, input.Nationality)
	}

	gross := amount(input.GrossSalary)

	var housing float64
	switch input.HousingAllowanceType {
	case domain.HousingPercentage, "":
		housing = gross * (amount(input.HousingAllowance) / 100)
	case domain.HousingFixed:
		housing = amount(input.HousingAllowance)
	default:
		return domain.SalaryResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidHousingType, input.HousingAllowanceType)
	}

	transport := amount(input.TransportAllowance)
	other := amount(input.OtherAllowances)
	deductions := amount(input.OtherDeductions)
	totalAllowances := housing + transport + other

	var gosi, employerGOSI float64
	if input.GOSIApplies {
		gosi = gross * GOSIRateEmployee
		employerGOSI = gross * GOSIRateEmployer
	}

	net := gross + totalAllowances - gosi - deductions
	if err := checkFinite(
		housing, totalAllowances, gosi, employerGOSI, net,
		gross*MonthsPerYear, totalAllowances*MonthsPerYear, gosi*MonthsPerYear,
		deductions*MonthsPerYear, net*MonthsPerYear,
	); err != nil {
		return domain.SalaryResult{}, err
	}

	r := domain.SalaryResult{
		GrossSalary:        gross,
		HousingAmount:      housing,
		TransportAllowance: transport,
		OtherAllowances:    other,
		TotalAllowances:    totalAllowances,
		GOSIDeduction:      gosi,
		EmployerGOSI:       employerGOSI,
		OtherDeductions:    deductions,
		NetSalary:          net,
		YearlyGross:        gross * MonthsPerYear,
		YearlyAllowances:   totalAllowances * MonthsPerYear,
		YearlyGOSI:         gosi * MonthsPerYear,
		YearlyDeductions:   deductions * MonthsPerYear,
		YearlyNet:          net * MonthsPerYear,
		Breakdown: nonZeroSlices(
			domain.Slice{Name: "Gross Salary", Value: gross},
			domain.Slice{Name: "Housing Allowance", Value: housing},
			domain.Slice{Name: "Transport Allowance", Value: transport},
			domain.Slice{Name: "Other Allowances", Value: other},
		),
	}

	r.Lines = (&lineBuilder{}).
		money("gross_salary", "Gross Salary / الراتب الإجمالي", r.GrossSalary).
		money("total_allowances", "Total Allowances / إجمالي البدلات", r.TotalAllowances).
		money("gosi_deduction", "GOSI Contribution / اشتراك التأمينات", r.GOSIDeduction).
		money("other_deductions", "Other Deductions / الخصومات الأخرى", r.OtherDeductions).
		money("net_salary", "Net Salary / الراتب الصافي", r.NetSalary).
		money("employer_gosi", "Employer GOSI (not deducted) / حصة صاحب العمل", r.EmployerGOSI).
		money("yearly_net", "Yearly Net Salary / الراتب الصافي السنوي", r.YearlyNet).
		build()

	return r, nil
}
