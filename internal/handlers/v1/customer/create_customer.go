package customer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// CreateCustomerBody is the request body for creating a customer.
type CreateCustomerBody struct {
	FullName string           `json:"fullName" minLength:"1" doc:"Customer full name"`
	Accounts []AccountOpening `json:"accounts" minItems:"1" doc:"Accounts to open, at least one"`
}

// CreateCustomerInput is the Huma input for creating a customer.
type CreateCustomerInput struct {
	Body CreateCustomerBody
}

// CreateCustomerOutput is the Huma output for creating a customer.
type CreateCustomerOutput struct {
	Status int
	Body   Customer
}

// customerCreator is the interface for creating customers and opening accounts.
type customerCreator interface {
	CreateCustomer(ctx context.Context, fullName string, openings []service.AccountOpening) (service.Customer, error)
	OpenAccount(ctx context.Context, customerID uuid.UUID, opening service.AccountOpening) (service.Account, error)
}

// CreateCustomerHandler handles POST /v1/customer.
type CreateCustomerHandler struct {
	CustomerService customerCreator
}

// NewCreateCustomerHandler creates a new CreateCustomerHandler.
func NewCreateCustomerHandler(svc customerCreator) *CreateCustomerHandler {
	return &CreateCustomerHandler{CustomerService: svc}
}

// Register registers the create customer endpoint with the Huma API.
func (h *CreateCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-customer",
		Method:      http.MethodPost,
		Path:        "/v1/customer",
		Summary:     "Create a customer",
		Description: "Opens the requested accounts and adds a new customer to the bank.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func parseOpening(o AccountOpening) (service.AccountOpening, error) {
	accountType, err := ledger.ParseAccountType(o.Type)
	if err != nil {
		return service.AccountOpening{}, huma.NewError(http.StatusBadRequest, "invalid account type", err)
	}
	return service.AccountOpening{Type: accountType, Locale: o.Locale}, nil
}

func parseCreateCustomerInput(input *CreateCustomerInput) ([]service.AccountOpening, error) {
	openings := make([]service.AccountOpening, len(input.Body.Accounts))
	for i, o := range input.Body.Accounts {
		opening, err := parseOpening(o)
		if err != nil {
			return nil, err
		}
		openings[i] = opening
	}
	return openings, nil
}

func (h *CreateCustomerHandler) handle(ctx context.Context, input *CreateCustomerInput) (*CreateCustomerOutput, error) {
	logData := logging.GetLogData(ctx)

	openings, err := parseCreateCustomerInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCustomerMs")
	}
	c, err := h.CustomerService.CreateCustomer(ctx, input.Body.FullName, openings)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to create customer")
	}

	if logData != nil {
		logData.AddData("customerID", c.ID.String())
	}

	return &CreateCustomerOutput{
		Status: http.StatusCreated,
		Body:   fromService(c),
	}, nil
}
