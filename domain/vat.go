package domain

// VATDirection tells whether the entered amount excludes (add) or already
// includes (remove) VAT.
type VATDirection string

const (
	VATAdd    VATDirection = "add"
	VATRemove VATDirection = "remove"
)

type VATInput struct {
	Amount      Number       `json:"amount"`
	Quantity    Number       `json:"quantity"`
	RatePercent Number       `json:"rate_percent"`
	Direction   VATDirection `json:"direction"`
}

type VATResult struct {
	BaseAmount     float64      `json:"base_amount"`
	VATAmount      float64      `json:"vat_amount"`
	TotalAmount    float64      `json:"total_amount"`
	RatePercent    float64      `json:"rate_percent"`
	UnitBaseAmount float64      `json:"unit_base_amount"`
	UnitVATAmount  float64      `json:"unit_vat_amount"`
	Lines          []ResultLine `json:"lines"`
}

func DefaultVATInput() VATInput {
	return VATInput{
		Amount:      1000,
		Quantity:    1,
		RatePercent: 15,
		Direction:   VATAdd,
	}
}
