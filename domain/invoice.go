package domain

import "time"

type Party struct {
	Name      string `json:"name"`
	VATNumber string `json:"vat_number"`
	Address   string `json:"address"`
}

type InvoiceItem struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Quantity       Number `json:"quantity"`
	UnitPrice      Number `json:"unit_price"`
	VATRatePercent Number `json:"vat_rate_percent"`
}

type Invoice struct {
	InvoiceNumber string        `json:"invoice_number"`
	InvoiceDate   string        `json:"invoice_date"`
	Seller        Party         `json:"seller"`
	Buyer         Party         `json:"buyer"`
	Items         []InvoiceItem `json:"items"`
}

type InvoiceLineTotal struct {
	ID    string  `json:"id"`
	Net   float64 `json:"net"`
	VAT   float64 `json:"vat"`
	Total float64 `json:"total"`
}

type InvoiceTotals struct {
	Items    []InvoiceLineTotal `json:"items"`
	Subtotal float64            `json:"subtotal"`
	TotalVAT float64            `json:"total_vat"`
	Total    float64            `json:"total"`
	Lines    []ResultLine       `json:"lines"`
}

// InvoiceResult echoes the normalised invoice (ids assigned) with its totals.
type InvoiceResult struct {
	Invoice  Invoice       `json:"invoice"`
	Totals   InvoiceTotals `json:"totals"`
	Filename string        `json:"filename"`
}

func DefaultInvoice(now time.Time) Invoice {
	return Invoice{
		InvoiceNumber: "INV-001",
		InvoiceDate:   now.Format("2006-01-02"),
		Seller: Party{
			Name:      "ABC Company Ltd.",
			VATNumber: "123456789012345",
			Address:   "Riyadh, Saudi Arabia",
		},
		Buyer: Party{
			Name:      "XYZ Corporation",
			VATNumber: "987654321098765",
			Address:   "Jeddah, Saudi Arabia",
		},
		Items: []InvoiceItem{
			{ID: "1", Description: "Product/Service 1", Quantity: 2, UnitPrice: 1000, VATRatePercent: 15},
		},
	}
}
