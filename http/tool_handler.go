package http

import (
	"net/http"

	"gcc-tools/domain"
	"gcc-tools/metrics"
	"gcc-tools/service"
)

const (
	toolZakat       = "zakat-calculator"
	toolVAT         = "vat-calculator"
	toolSalary      = "salary-calculator"
	toolLoan        = "loan-calculator"
	toolMortgage    = "mortgage-calculator"
	toolRentalYield = "rental-yield-calculator"
	toolInvoice     = "vat-invoice-generator"
)

func serveDefaults(w http.ResponseWriter, r *http.Request, defaults any) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, defaults)
}

// serveCalculation decodes In from the body, runs calc and writes its result.
func serveCalculation[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	tool string,
	calc func(In) (Out, error),
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input In
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := calc(input)
	metrics.ObserveCalculation(tool, err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// serveChart decodes In, derives the breakdown and returns it as a PNG pie.
func serveChart[In any](
	w http.ResponseWriter,
	r *http.Request,
	charts *service.ChartService,
	title string,
	breakdown func(In) ([]domain.Slice, error),
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input In
	if !decodeJSON(w, r, &input) {
		return
	}

	slices, err := breakdown(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	png, err := charts.RenderPie(r.Context(), title, slices)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeBinary(w, "image/png", png)
}
