package service

import (
	"fmt"
	"slices"

	"gcc-tools/domain"
)

type VATService struct{}

func NewVATService() *VATService {
	return &VATService{}
}

// CalculateVAT adds VAT to a net amount or extracts it from a gross one.
// The amount is per unit and is multiplied by the quantity first.
func (s *VATService) CalculateVAT(input domain.VATInput) (domain.VATResult, error) {
	ratePercent := amount(input.RatePercent)
	if !slices.Contains(SupportedVATRates, ratePercent) {
		return domain.VATResult{}, fmt.Errorf("%w: got %v", domain.ErrUnsupportedVATRate, ratePercent)
	}
	rate := ratePercent / 100

	quantity := amount(input.Quantity)
	entered := amount(input.Amount) * quantity

	var base, vat, total float64
	switch input.Direction {
	case domain.VATAdd, "":
		base = entered
		vat = base * rate
		total = base + vat
	case domain.VATRemove:
		total = entered
		base = total / (1 + rate)
		vat = total - base
	default:
		return domain.VATResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, input.Direction)
	}

	var unitBase, unitVAT float64
	if quantity > 0 {
		unitBase = base / quantity
		unitVAT = vat / quantity
	}

	if err := checkFinite(base, vat, total, unitBase, unitVAT); err != nil {
		return domain.VATResult{}, err
	}

	b := &lineBuilder{}
	if input.Direction == domain.VATRemove {
		b.money("base_amount", "Amount Excluding VAT / المبلغ بدون ضريبة", base)
	} else {
		b.money("base_amount", "Original Amount / المبلغ الأصلي", base)
	}
	b.percent("rate_percent", "VAT Rate / معدل ضريبة القيمة المضافة", ratePercent).
		money("vat_amount", "VAT / ضريبة القيمة المضافة", vat)
	if input.Direction == domain.VATRemove {
		b.money("total_amount", "Amount Including VAT / المبلغ مع الضريبة", total)
	} else {
		b.money("total_amount", "Total Amount / المبلغ الإجمالي", total)
	}
	b.money("unit_base_amount", "Unit Price / سعر الوحدة", unitBase).
		money("unit_vat_amount", "VAT per Unit / الضريبة لكل وحدة", unitVAT)

	return domain.VATResult{
		BaseAmount:     base,
		VATAmount:      vat,
		TotalAmount:    total,
		RatePercent:    ratePercent,
		UnitBaseAmount: unitBase,
		UnitVATAmount:  unitVAT,
		Lines:          b.build(),
	}, nil
}
