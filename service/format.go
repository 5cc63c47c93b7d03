package service

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gcc-tools/domain"
)

var printer = message.NewPrinter(language.English)

// notANumber is shown for figures that are not finite. Calculators reject
// those before formatting.
const notANumber = "n/a"

// FormatSAR renders an amount as "1,234.56 SAR", rounding half away from zero.
func FormatSAR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notANumber
	}
	d := decimal.NewFromFloat(v).Round(2)
	return printer.Sprintf("%.2f SAR", d.InexactFloat64())
}

// FormatPercent renders a percentage value (already ×100) as "4.50%".
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notANumber
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// lineBuilder accumulates the bilingual rows of a result card.
type lineBuilder struct {
	lines []domain.ResultLine
}

func (b *lineBuilder) money(key, label string, v float64) *lineBuilder {
	b.lines = append(b.lines, domain.ResultLine{Key: key, Label: label, Value: FormatSAR(v)})
	return b
}

func (b *lineBuilder) percent(key, label string, v float64) *lineBuilder {
	b.lines = append(b.lines, domain.ResultLine{Key: key, Label: label, Value: FormatPercent(v)})
	return b
}

func (b *lineBuilder) text(key, label, v string) *lineBuilder {
	b.lines = append(b.lines, domain.ResultLine{Key: key, Label: label, Value: v})
	return b
}

func (b *lineBuilder) build() []domain.ResultLine {
	return b.lines
}

// nonZeroSlices keeps the positive segments of a breakdown, in order.
func nonZeroSlices(slices ...domain.Slice) []domain.Slice {
	out := make([]domain.Slice, 0, len(slices))
	for _, s := range slices {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}
