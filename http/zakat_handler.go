package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type ZakatHandler struct {
	service *service.ZakatService
	charts  *service.ChartService
}

func NewZakatHandler(service *service.ZakatService, charts *service.ChartService) *ZakatHandler {
	return &ZakatHandler{service: service, charts: charts}
}

func (h *ZakatHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultZakatInput())
}

func (h *ZakatHandler) CalculateZakat(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolZakat, h.service.CalculateZakat)
}

// Chart draws the asset distribution.
func (h *ZakatHandler) Chart(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, h.charts, "Asset Distribution", func(in domain.ZakatInput) ([]domain.Slice, error) {
		res, err := h.service.CalculateZakat(in)
		return res.Breakdown, err
	})
}
