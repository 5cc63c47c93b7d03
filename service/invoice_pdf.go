package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"gcc-tools/domain"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 15.0
	marginBottom = 25.0
	contentWidth = pageWidth - marginLeft - marginRight

	itemRowHeight        = 8.0
	maxDescriptionLength = 30
)

// Item table columns: description, qty, unit price, VAT %, total.
var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"Description", 80, "L"},
	{"Qty", 20, "R"},
	{"Unit Price", 25, "R"},
	{"VAT %", 20, "R"},
	{"Total", 25, "R"},
}

// invoicePDF wraps the document with a translator from UTF-8 to the core
// font encoding; Arabic text is not representable there and is dropped.
type invoicePDF struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func renderInvoicePDF(inv domain.Invoice, totals domain.InvoiceTotals, created time.Time) ([]byte, error) {
	doc := &invoicePDF{pdf: fpdf.New("P", "mm", "A4", "")}
	doc.tr = doc.pdf.UnicodeTranslatorFromDescriptor("")

	doc.pdf.SetCreationDate(created)
	doc.pdf.SetModificationDate(created)
	doc.pdf.SetTitle(doc.tr("VAT Invoice "+inv.InvoiceNumber), false)
	doc.pdf.SetMargins(marginLeft, marginTop, marginRight)
	doc.pdf.SetAutoPageBreak(false, marginBottom)
	doc.pdf.SetFooterFunc(doc.footer)

	doc.pdf.AddPage()
	doc.header(inv)
	doc.items(inv.Items, totals.Items)
	doc.totals(totals)

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *invoicePDF) header(inv domain.Invoice) {
	d.pdf.SetFont("Arial", "B", 20)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth, 12, "VAT INVOICE", "", 1, "C", false, 0, "")
	d.pdf.Ln(6)

	top := d.pdf.GetY()
	d.party(marginLeft, top, "Seller:", inv.Seller)
	d.party(marginLeft+contentWidth/2, top, "Buyer:", inv.Buyer)

	d.pdf.SetXY(marginLeft, top+30)
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(50, 50, 50)
	d.pdf.CellFormat(contentWidth/2, 8, d.tr("Invoice No: "+inv.InvoiceNumber), "", 0, "L", false, 0, "")
	d.pdf.CellFormat(contentWidth/2, 8, d.tr("Date: "+inv.InvoiceDate), "", 1, "L", false, 0, "")
	d.pdf.Ln(6)
}

func (d *invoicePDF) party(x, y float64, title string, p domain.Party) {
	d.pdf.SetXY(x, y)
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth/2, 7, title, "", 2, "L", false, 0, "")

	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	d.pdf.CellFormat(contentWidth/2, 6, d.tr("Name: "+p.Name), "", 2, "L", false, 0, "")
	d.pdf.CellFormat(contentWidth/2, 6, d.tr("VAT: "+p.VATNumber), "", 2, "L", false, 0, "")
	d.pdf.CellFormat(contentWidth/2, 6, d.tr("Address: "+p.Address), "", 2, "L", false, 0, "")
}

func (d *invoicePDF) tableHeader() {
	d.pdf.SetFont("Arial", "B", 10)
	d.pdf.SetFillColor(245, 247, 250)
	d.pdf.SetTextColor(0, 51, 102)
	for _, c := range itemColumns {
		d.pdf.CellFormat(c.width, itemRowHeight, c.title, "B", 0, c.align, true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
}

// items writes one row per item, starting a new page (and repeating the
// table header) when the next row would cross the bottom margin.
func (d *invoicePDF) items(items []domain.InvoiceItem, lines []domain.InvoiceLineTotal) {
	d.tableHeader()
	for i, it := range items {
		if d.pdf.GetY()+itemRowHeight > pageHeight-marginBottom {
			d.pdf.AddPage()
			d.tableHeader()
		}

		desc := []rune(it.Description)
		if len(desc) > maxDescriptionLength {
			desc = desc[:maxDescriptionLength]
		}

		cells := []string{
			d.tr(string(desc)),
			fmt.Sprintf("%g", amount(it.Quantity)),
			fmt.Sprintf("%.2f", amount(it.UnitPrice)),
			fmt.Sprintf("%g%%", amount(it.VATRatePercent)),
			fmt.Sprintf("%.2f", lines[i].Total),
		}
		for j, c := range itemColumns {
			d.pdf.CellFormat(c.width, itemRowHeight, cells[j], "", 0, c.align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Line(marginLeft, d.pdf.GetY()+2, pageWidth-marginRight, d.pdf.GetY()+2)
	d.pdf.Ln(6)
}

func (d *invoicePDF) totals(t domain.InvoiceTotals) {
	if d.pdf.GetY()+30 > pageHeight-marginBottom {
		d.pdf.AddPage()
	}

	labelX := marginLeft + contentWidth/2
	row := func(label string, v float64, size float64, style string) {
		d.pdf.SetX(labelX)
		d.pdf.SetFont("Arial", style, size)
		d.pdf.CellFormat(contentWidth/4, 8, label, "", 0, "L", false, 0, "")
		d.pdf.CellFormat(contentWidth/4, 8, fmt.Sprintf("%.2f SAR", v), "", 1, "R", false, 0, "")
	}
	row("Subtotal:", t.Subtotal, 10, "")
	row("VAT:", t.TotalVAT, 10, "")
	row("Total:", t.Total, 12, "B")
}

func (d *invoicePDF) footer() {
	d.pdf.SetY(-15)
	d.pdf.SetFont("Arial", "I", 8)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.CellFormat(contentWidth, 5, "This is a computer-generated invoice.", "", 0, "C", false, 0, "")
	d.pdf.SetX(marginLeft)
	d.pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Page %d", d.pdf.PageNo()), "", 0, "R", false, 0, "")
}
