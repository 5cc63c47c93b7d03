package service

import "gcc-tools/domain"

type ZakatService struct{}

func NewZakatService() *ZakatService {
	return &ZakatService{}
}

// CalculateZakat applies 2.5% to net wealth when it reaches the Nisab.
//
// The Nisab is always 85 g of gold at the entered gold price, even when
// silver is declared. The 595 g silver threshold is reported for reference
// only; whether the lower of the two should apply is an open product
// question.
func (s *ZakatService) CalculateZakat(input domain.ZakatInput) (domain.ZakatResult, error) {
	cash := amount(input.Cash)
	stocks := amount(input.Stocks)
	business := amount(input.BusinessAssets)
	goldPrice := amount(input.GoldPricePerGram)
	silverPrice := amount(input.SilverPricePerGram)

	goldValue := amount(input.GoldGrams) * goldPrice
	silverValue := amount(input.SilverGrams) * silverPrice

	totalAssets := cash + goldValue + silverValue + stocks + business
	netWealth := totalAssets - amount(input.Debts)

	nisab := NisabGoldGrams * goldPrice
	eligible := netWealth >= nisab

	zakat := 0.0
	if eligible {
		zakat = netWealth * ZakatRate
	}

	silverNisab := NisabSilverGrams * silverPrice
	if err := checkFinite(goldValue, silverValue, totalAssets, netWealth, nisab, silverNisab, zakat); err != nil {
		return domain.ZakatResult{}, err
	}

	status := "Not due / غير مستحقة"
	if eligible {
		status = "Due / مستحقة"
	}

	lines := (&lineBuilder{}).
		money("total_assets", "Total Assets / إجمالي الأصول", totalAssets).
		money("net_wealth", "Net Wealth / صافي الثروة", netWealth).
		money("nisab_threshold", "Nisab Threshold / حد النصاب", nisab).
		text("is_eligible", "Zakat Status / حالة الزكاة", status).
		money("zakat_amount", "Zakat Due / الزكاة المستحقة", zakat).
		build()

	return domain.ZakatResult{
		GoldValue:            goldValue,
		SilverValue:          silverValue,
		TotalAssets:          totalAssets,
		NetWealth:            netWealth,
		NisabThreshold:       nisab,
		SilverNisabThreshold: silverNisab,
		IsEligible:           eligible,
		ZakatAmount:          zakat,
		Breakdown: nonZeroSlices(
			domain.Slice{Name: "Cash", Value: cash},
			domain.Slice{Name: "Gold", Value: goldValue},
			domain.Slice{Name: "Silver", Value: silverValue},
			domain.Slice{Name: "Stocks", Value: stocks},
			domain.Slice{Name: "Business", Value: business},
		),
		Lines: lines,
	}, nil
}
