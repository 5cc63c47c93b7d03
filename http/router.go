package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Loan        *LoanHandler
	Mortgage    *MortgageHandler
	VAT         *VATHandler
	Zakat       *ZakatHandler
	Salary      *SalaryHandler
	RentalYield *RentalYieldHandler
	Invoice     *InvoiceHandler
	Content     *ContentHandler
}

// NewRouter registers every route. Calculation, chart and PDF routes go
// through the rate limiter; reads of static content and defaults do not. The
// whole mux is wrapped in request logging.
func NewRouter(h Handlers, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	limited := func(path string, fn http.HandlerFunc) {
		mux.Handle(path, RateLimitMiddleware(limiter, fn))
	}
	tool := func(slug string) string { return "/tools/" + slug }

	mux.HandleFunc("/health", health)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/navigation", h.Content.Navigation)
	mux.HandleFunc("/articles", h.Content.ListArticles)
	mux.HandleFunc("/articles/{slug}", h.Content.GetArticle)
	mux.HandleFunc("/templates", h.Content.ListTemplates)

	mux.HandleFunc(tool(toolLoan)+"/defaults", h.Loan.Defaults)
	limited(tool(toolLoan)+"/calculate", h.Loan.CalculateLoan)
	mux.HandleFunc(tool(toolLoan)+"/eligibility/defaults", h.Loan.EligibilityDefaults)
	limited(tool(toolLoan)+"/eligibility", h.Loan.CheckEligibility)

	mux.HandleFunc(tool(toolMortgage)+"/defaults", h.Mortgage.Defaults)
	limited(tool(toolMortgage)+"/calculate", h.Mortgage.CalculateMortgage)

	mux.HandleFunc(tool(toolVAT)+"/defaults", h.VAT.Defaults)
	limited(tool(toolVAT)+"/calculate", h.VAT.CalculateVAT)

	mux.HandleFunc(tool(toolZakat)+"/defaults", h.Zakat.Defaults)
	limited(tool(toolZakat)+"/calculate", h.Zakat.CalculateZakat)
	limited(tool(toolZakat)+"/chart", h.Zakat.Chart)

	mux.HandleFunc(tool(toolSalary)+"/defaults", h.Salary.Defaults)
	limited(tool(toolSalary)+"/calculate", h.Salary.CalculateSalary)
	limited(tool(toolSalary)+"/chart", h.Salary.Chart)

	mux.HandleFunc(tool(toolRentalYield)+"/defaults", h.RentalYield.Defaults)
	limited(tool(toolRentalYield)+"/calculate", h.RentalYield.CalculateYield)
	limited(tool(toolRentalYield)+"/chart", h.RentalYield.Chart)

	mux.HandleFunc(tool(toolInvoice)+"/defaults", h.Invoice.Defaults)
	limited(tool(toolInvoice)+"/calculate", h.Invoice.CalculateInvoice)
	limited(tool(toolInvoice)+"/pdf", h.Invoice.DownloadPDF)

	return RequestLogMiddleware(mux)
}

func health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
