package service

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gcc-tools/domain"
	"gcc-tools/repository"
)

type InvoiceService struct {
	cache renderCache
	now   func() time.Time
}

func NewInvoiceService(cache repository.CacheRepository, ttl time.Duration) *InvoiceService {
	return &InvoiceService{
		cache: renderCache{repo: cache, ttl: ttl},
		now:   time.Now,
	}
}

func (s *InvoiceService) Defaults() domain.Invoice {
	return domain.DefaultInvoice(s.now())
}

// Calculate normalises the invoice and computes its totals:
//
//	subtotal = Σ qty×price,  VAT = Σ qty×price×rate/100,  total = subtotal+VAT
func (s *InvoiceService) Calculate(inv domain.Invoice) (domain.InvoiceResult, error) {
	if len(inv.Items) > MaxInvoiceItems {
		return domain.InvoiceResult{}, domain.ErrTooManyItems
	}

	inv = s.normalize(inv)
	totals, err := invoiceTotals(inv.Items)
	if err != nil {
		return domain.InvoiceResult{}, err
	}
	return domain.InvoiceResult{
		Invoice:  inv,
		Totals:   totals,
		Filename: InvoiceFilename(inv.InvoiceNumber),
	}, nil
}

// RenderPDF lays the invoice out as an A4 PDF and returns it with its
// download filename.
func (s *InvoiceService) RenderPDF(ctx context.Context, inv domain.Invoice) ([]byte, string, error) {
	if len(inv.Items) == 0 {
		return nil, "", domain.ErrNoInvoiceItems
	}

	res, err := s.Calculate(inv)
	if err != nil {
		return nil, "", err
	}

	key := invoiceCacheKey{Invoice: res.Invoice, Created: s.creationDate(res.Invoice)}
	// Item ids are not printed.
	key.Invoice.Items = slices.Clone(res.Invoice.Items)
	for i := range key.Invoice.Items {
		key.Invoice.Items[i].ID = ""
	}

	pdf, err := s.cache.fetch(ctx, "invoice", key, func() ([]byte, error) {
		return renderInvoicePDF(res.Invoice, res.Totals, key.Created)
	})
	if err != nil {
		return nil, "", err
	}
	return pdf, res.Filename, nil
}

// invoiceCacheKey identifies a rendered PDF. The creation date is part of
// it so a cached document never carries another render's timestamp.
type invoiceCacheKey struct {
	Invoice domain.Invoice `json:"invoice"`
	Created time.Time      `json:"created"`
}

// creationDate is the invoice date at midnight UTC, or today when the date
// is not in 2006-01-02 form.
func (s *InvoiceService) creationDate(inv domain.Invoice) time.Time {
	if t, err := time.Parse(time.DateOnly, inv.InvoiceDate); err == nil {
		return t
	}
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *InvoiceService) normalize(inv domain.Invoice) domain.Invoice {
	inv.InvoiceNumber = strings.TrimSpace(inv.InvoiceNumber)
	inv.InvoiceDate = strings.TrimSpace(inv.InvoiceDate)
	if inv.InvoiceDate == "" {
		inv.InvoiceDate = s.now().Format(time.DateOnly)
	}

	items := make([]domain.InvoiceItem, len(inv.Items))
	for i, it := range inv.Items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		items[i] = it
	}
	inv.Items = items
	return inv
}

// invoiceTotals sums in decimal; totals too large for a float64 fail with
// ErrResultOutOfRange.
func invoiceTotals(items []domain.InvoiceItem) (domain.InvoiceTotals, error) {
	hundred := decimal.NewFromInt(100)
	subtotal := decimal.Zero
	totalVAT := decimal.Zero

	lineTotals := make([]domain.InvoiceLineTotal, 0, len(items))
	for _, it := range items {
		net := decimal.NewFromFloat(amount(it.Quantity)).Mul(decimal.NewFromFloat(amount(it.UnitPrice)))
		vat := net.Mul(decimal.NewFromFloat(amount(it.VATRatePercent))).Div(hundred)

		subtotal = subtotal.Add(net)
		totalVAT = totalVAT.Add(vat)

		line := domain.InvoiceLineTotal{
			ID:    it.ID,
			Net:   net.InexactFloat64(),
			VAT:   vat.InexactFloat64(),
			Total: net.Add(vat).InexactFloat64(),
		}
		if err := checkFinite(line.Net, line.VAT, line.Total); err != nil {
			return domain.InvoiceTotals{}, err
		}
		lineTotals = append(lineTotals, line)
	}
	total := subtotal.Add(totalVAT)
	if err := checkFinite(subtotal.InexactFloat64(), totalVAT.InexactFloat64(), total.InexactFloat64()); err != nil {
		return domain.InvoiceTotals{}, err
	}

	lines := (&lineBuilder{}).
		money("subtotal", "Subtotal / المجموع الفرعي", subtotal.InexactFloat64()).
		money("total_vat", "VAT / ضريبة القيمة المضافة", totalVAT.InexactFloat64()).
		money("total", "Total / الإجمالي", total.InexactFloat64()).
		build()

	return domain.InvoiceTotals{
		Items:    lineTotals,
		Subtotal: subtotal.InexactFloat64(),
		TotalVAT: totalVAT.InexactFloat64(),
		Total:    total.InexactFloat64(),
		Lines:    lines,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// InvoiceFilename returns "invoice-{number}.pdf" with characters that are
// unsafe in a Content-Disposition filename replaced by '-'.
func InvoiceFilename(number string) string {
	number = unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(number), "-")
	number = strings.Trim(number, "-.")
	if number == "" {
		return "invoice.pdf"
	}
	return "invoice-" + number + ".pdf"
}
