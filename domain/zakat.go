package domain

type ZakatInput struct {
	Cash               Number `json:"cash"`
	GoldGrams          Number `json:"gold_grams"`
	GoldPricePerGram   Number `json:"gold_price_per_gram"`
	SilverGrams        Number `json:"silver_grams"`
	SilverPricePerGram Number `json:"silver_price_per_gram"`
	Stocks             Number `json:"stocks"`
	BusinessAssets     Number `json:"business_assets"`
	Debts              Number `json:"debts"`
}

type ZakatResult struct {
	GoldValue            float64      `json:"gold_value"`
	SilverValue          float64      `json:"silver_value"`
	TotalAssets          float64      `json:"total_assets"`
	NetWealth            float64      `json:"net_wealth"`
	NisabThreshold       float64      `json:"nisab_threshold"`
	SilverNisabThreshold float64      `json:"silver_nisab_threshold"`
	IsEligible           bool         `json:"is_eligible"`
	ZakatAmount          float64      `json:"zakat_amount"`
	Breakdown            []Slice      `json:"breakdown"`
	Lines                []ResultLine `json:"lines"`
}

func DefaultZakatInput() ZakatInput {
	return ZakatInput{
		Cash:               50000,
		GoldGrams:          100,
		GoldPricePerGram:   250,
		SilverPricePerGram: 3,
	}
}
