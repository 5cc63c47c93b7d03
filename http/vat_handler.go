package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/service"
)

type VATHandler struct {
	service *service.VATService
}

func NewVATHandler(service *service.VATService) *VATHandler {
	return &VATHandler{service: service}
}

func (h *VATHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	serveDefaults(w, r, domain.DefaultVATInput())
}

func (h *VATHandler) CalculateVAT(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, toolVAT, h.service.CalculateVAT)
}
