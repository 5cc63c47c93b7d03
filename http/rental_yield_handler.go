package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type RentalYieldHandler struct {
	service *service.RentalYieldService
	charts  *service.ChartService
}

func NewRentalYieldHandler(service *service.RentalYieldService, charts *service.ChartService) *RentalYieldHandler {
	return &RentalYieldHandler{service: service, charts: charts}
}

func (h *RentalYieldHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultRentalYieldInput())
}

func (h *RentalYieldHandler) CalculateYield(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolRentalYield, h.service.CalculateYield)
}

// Chart splits the adjusted rent into net income and expenses.
func (h *RentalYieldHandler) Chart(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, h.charts, "Income vs Expenses", func(in domain.RentalYieldInput) ([]domain.Slice, error) {
		res, err := h.service.CalculateYield(in)
		return res.Breakdown, err
	})
}
