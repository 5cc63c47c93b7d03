package domain

type HousingAllowanceType string

const (
	HousingPercentage HousingAllowanceType = "percentage"
	HousingFixed      HousingAllowanceType = "fixed"
)

type Nationality string

const (
	NationalitySaudi Nationality = "saudi"
	NationalityExpat Nationality = "expat"
)

type SalaryInput struct {
	GrossSalary          Number               `json:"gross_salary"`
	HousingAllowance     Number               `json:"housing_allowance"`
	HousingAllowanceType HousingAllowanceType `json:"housing_allowance_type"`
	TransportAllowance   Number               `json:"transport_allowance"`
	OtherAllowances      Number               `json:"other_allowances"`
	OtherDeductions      Number               `json:"other_deductions"`
	GOSIApplies          bool                 `json:"gosi_applies"`
	Nationality          Nationality          `json:"nationality"`
}

type SalaryResult struct {
	GrossSalary        float64      `json:"gross_salary"`
	HousingAmount      float64      `json:"housing_amount"`
	TransportAllowance float64      `json:"transport_allowance"`
	OtherAllowances    float64      `json:"other_allowances"`
	TotalAllowances    float64      `json:"total_allowances"`
	GOSIDeduction      float64      `json:"gosi_deduction"`
	EmployerGOSI       float64      `json:"employer_gosi"`
	OtherDeductions    float64      `json:"other_deductions"`
	NetSalary          float64      `json:"net_salary"`
	YearlyGross        float64      `json:"yearly_gross"`
	YearlyAllowances   float64      `json:"yearly_allowances"`
	YearlyGOSI         float64      `json:"yearly_gosi"`
	YearlyDeductions   float64      `json:"yearly_deductions"`
	YearlyNet          float64      `json:"yearly_net"`
	Breakdown          []Slice      `json:"breakdown"`
	Lines              []ResultLine `json:"lines"`
}

func DefaultSalaryInput() SalaryInput {
	return SalaryInput{
		GrossSalary:          10000,
		HousingAllowanceType: HousingPercentage,
		GOSIApplies:          true,
		Nationality:          NationalitySaudi,
	}
}
