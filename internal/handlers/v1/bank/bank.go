package bank

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// SummaryResponse is the response body for the bank summary.
type SummaryResponse struct {
	Name    string `json:"name" doc:"Bank name"`
	Summary string `json:"summary" doc:"Rendered customer summary"`
}

// SummaryOutput is the Huma output for the bank summary.
type SummaryOutput struct {
	Body SummaryResponse
}

// InterestResponse is the interest paid by the bank per currency symbol.
type InterestResponse struct {
	Totals map[string]string `json:"totals" doc:"Decimal interest paid keyed by currency symbol"`
	Report string            `json:"report" doc:"Rendered interest report"`
}

// InterestOutput is the Huma output for the interest report.
type InterestOutput struct {
	Body InterestResponse
}

// AccrueResponse describes one accrual run.
type AccrueResponse struct {
	Accounts int               `json:"accounts" doc:"Number of accounts accrued"`
	Accrued  map[string]string `json:"accrued" doc:"Decimal interest added keyed by currency symbol"`
}

// AccrueOutput is the Huma output for an accrual run.
type AccrueOutput struct {
	Body AccrueResponse
}

// bankReporter is the interface for bank-wide reports and accrual.
type bankReporter interface {
	Name(ctx context.Context) string
	Summary(ctx context.Context) string
	TotalInterestPaid(ctx context.Context) map[string]decimal.Decimal
	InterestReport(ctx context.Context) string
	AccrueInterest(ctx context.Context) (ledger.AccrualResult, error)
}

// Handler serves the /v1/bank endpoints.
type Handler struct {
	BankService bankReporter
}

// NewHandler creates a new Handler.
func NewHandler(svc bankReporter) *Handler {
	return &Handler{BankService: svc}
}

// Register registers the bank endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bank-summary",
		Method:      http.MethodGet,
		Path:        "/v1/bank/summary",
		Summary:     "Bank summary",
		Description: "Lists every customer with their number of accounts.",
		Tags:        []string{"Bank"},
	}, h.handleSummary)

	huma.Register(api, huma.Operation{
		OperationID: "bank-interest",
		Method:      http.MethodGet,
		Path:        "/v1/bank/interest",
		Summary:     "Total interest paid",
		Description: "Sums the interest paid on every account per currency.",
		Tags:        []string{"Bank"},
	}, h.handleInterest)

	huma.Register(api, huma.Operation{
		OperationID: "bank-accrue",
		Method:      http.MethodPost,
		Path:        "/v1/bank/accrue",
		Summary:     "Accrue one day of interest",
		Description: "Accrues one day of interest on every account immediately.",
		Tags:        []string{"Bank"},
	}, h.handleAccrue)
}

func (h *Handler) handleSummary(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	return &SummaryOutput{Body: SummaryResponse{
		Name:    h.BankService.Name(ctx),
		Summary: h.BankService.Summary(ctx),
	}}, nil
}

func (h *Handler) handleInterest(ctx context.Context, _ *struct{}) (*InterestOutput, error) {
	return &InterestOutput{Body: InterestResponse{
		Totals: decimalStrings(h.BankService.TotalInterestPaid(ctx)),
		Report: h.BankService.InterestReport(ctx),
	}}, nil
}

func (h *Handler) handleAccrue(ctx context.Context, _ *struct{}) (*AccrueOutput, error) {
	logData := logging.GetLogData(ctx)

	result, err := h.BankService.AccrueInterest(ctx)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to accrue interest")
	}

	if logData != nil {
		logData.AddData("accounts", result.Accounts)
	}

	return &AccrueOutput{Body: AccrueResponse{
		Accounts: result.Accounts,
		Accrued:  decimalStrings(result.Accrued),
	}}, nil
}

func decimalStrings(m map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}
