package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type MortgageHandler struct {
	service *service.MortgageService
}

func NewMortgageHandler(service *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{service: service}
}

func (h *MortgageHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultMortgageInput())
}

func (h *MortgageHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolMortgage, h.service.CalculateMortgage)
}
