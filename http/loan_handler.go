package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultLoanInput())
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolLoan, h.service.CalculateLoan)
}

func (h *LoanHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolLoan+"/eligibility", h.service.CheckEligibility)
}

// EligibilityDefaults returns the sample input of the eligibility form.
func (h *LoanHandler) EligibilityDefaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultLoanEligibilityInput())
}
