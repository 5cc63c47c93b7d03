package domain

// ResultLine is one formatted row of a calculator's result card.
type ResultLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Slice is one segment of a breakdown pie chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TenureUnit selects how a loan term is expressed.
type TenureUnit string

const (
	TenureYears  TenureUnit = "years"
	TenureMonths TenureUnit = "months"
)

// ScheduleRow summarises one year of an amortization schedule.
type ScheduleRow struct {
	Year          int     `json:"year"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	Balance       float64 `json:"balance"`
}
