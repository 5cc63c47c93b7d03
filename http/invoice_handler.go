package http

import (
	"fmt"
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/metrics"
	"gcc-tools/service"
)

type InvoiceHandler struct {
	service *service.InvoiceService
}

func NewInvoiceHandler(service *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, h.service.Defaults())
}

func (h *InvoiceHandler) CalculateInvoice(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolInvoice, h.service.Calculate)
}

// DownloadPDF streams the invoice as an attachment.
func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.Invoice
	if !decodeJSON(w, r, &input) {
		return
	}

	pdf, filename, err := h.service.RenderPDF(r.Context(), input)
	metrics.ObserveCalculation(toolInvoice+"/pdf", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writeBinary(w, "application/pdf", pdf)
}
