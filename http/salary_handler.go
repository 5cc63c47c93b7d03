package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type SalaryHandler struct {
	service *service.SalaryService
	charts  *service.ChartService
}

func NewSalaryHandler(service *service.SalaryService, charts *service.ChartService) *SalaryHandler {
	return &SalaryHandler{service: service, charts: charts}
}

func (h *SalaryHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultSalaryInput())
}

func (h *SalaryHandler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolSalary, h.service.CalculateSalary)
}

// Chart draws the salary composition.
func (h *SalaryHandler) Chart(w http.ResponseWriter, r *http.Request) {
	serveChart(w, r, h.charts, "Salary Breakdown", func(in domain.SalaryInput) ([]domain.Slice, error) {
		res, err := h.service.CalculateSalary(in)
		return res.Breakdown, err
	})
}
