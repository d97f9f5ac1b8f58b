package customer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// GetCustomerInput is the Huma input for reading a customer.
type GetCustomerInput struct {
	CustomerID string `path:"customerID" doc:"Customer UUID"`
}

// FindCustomerInput is the Huma input for looking a customer up by name.
type FindCustomerInput struct {
	Name string `query:"name" required:"true" minLength:"1" doc:"Exact full name"`
}

// CustomerOutput is the Huma output for a single customer.
type CustomerOutput struct {
	Body Customer
}

// InterestResponse is the customer's earned interest per currency symbol.
type InterestResponse struct {
	Totals map[string]string `json:"totals" doc:"Decimal interest earned keyed by currency symbol"`
}

// InterestOutput is the Huma output for a customer's interest.
type InterestOutput struct {
	Body InterestResponse
}

// StatementResponse is the rendered statement of all the customer's accounts.
type StatementResponse struct {
	Text string `json:"text" doc:"Rendered statement"`
}

// StatementOutput is the Huma output for a customer statement.
type StatementOutput struct {
	Body StatementResponse
}

// customerReader is the interface for reading customers.
type customerReader interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (service.Customer, error)
	FindByName(ctx context.Context, fullName string) (service.Customer, error)
	TotalInterestEarned(ctx context.Context, id uuid.UUID) (map[string]decimal.Decimal, error)
	Statement(ctx context.Context, id uuid.UUID) (string, error)
}

// GetCustomerHandler serves the read-only customer endpoints.
type GetCustomerHandler struct {
	CustomerService customerReader
}

// NewGetCustomerHandler creates a new GetCustomerHandler.
func NewGetCustomerHandler(svc customerReader) *GetCustomerHandler {
	return &GetCustomerHandler{CustomerService: svc}
}

// Register registers the customer read endpoints with the Huma API.
func (h *GetCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-customer",
		Method:      http.MethodGet,
		Path:        "/v1/customer/{customerID}",
		Summary:     "Get a customer",
		Tags:        []string{"Customers"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "find-customer",
		Method:      http.MethodGet,
		Path:        "/v1/customer",
		Summary:     "Find a customer by name",
		Description: "Returns the first customer whose full name matches exactly.",
		Tags:        []string{"Customers"},
	}, h.handleFind)

	huma.Register(api, huma.Operation{
		OperationID: "customer-interest",
		Method:      http.MethodGet,
		Path:        "/v1/customer/{customerID}/interest",
		Summary:     "Customer interest earned",
		Description: "Sums the interest earned on the customer's accounts per currency.",
		Tags:        []string{"Customers"},
	}, h.handleInterest)

	huma.Register(api, huma.Operation{
		OperationID: "customer-statement",
		Method:      http.MethodGet,
		Path:        "/v1/customer/{customerID}/statement",
		Summary:     "Customer statement",
		Tags:        []string{"Customers"},
	}, h.handleStatement)
}

func (h *GetCustomerHandler) handleGet(ctx context.Context, input *GetCustomerInput) (*CustomerOutput, error) {
	id, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	c, err := h.CustomerService.GetCustomer(ctx, id)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get customer")
	}
	return &CustomerOutput{Body: fromService(c)}, nil
}

func (h *GetCustomerHandler) handleFind(ctx context.Context, input *FindCustomerInput) (*CustomerOutput, error) {
	c, err := h.CustomerService.FindByName(ctx, input.Name)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to find customer")
	}
	return &CustomerOutput{Body: fromService(c)}, nil
}

func (h *GetCustomerHandler) handleInterest(ctx context.Context, input *GetCustomerInput) (*InterestOutput, error) {
	id, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	totals, err := h.CustomerService.TotalInterestEarned(ctx, id)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get interest")
	}

	resp := InterestResponse{Totals: make(map[string]string, len(totals))}
	for symbol, amount := range totals {
		resp.Totals[symbol] = amount.String()
	}
	return &InterestOutput{Body: resp}, nil
}

func (h *GetCustomerHandler) handleStatement(ctx context.Context, input *GetCustomerInput) (*StatementOutput, error) {
	id, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	text, err := h.CustomerService.Statement(ctx, id)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get statement")
	}
	return &StatementOutput{Body: StatementResponse{Text: text}}, nil
}
