package customer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
)

// OpenAccountInput is the Huma input for opening an account.
type OpenAccountInput struct {
	CustomerID string `path:"customerID" doc:"Customer UUID"`
	Body       AccountOpening
}

// OpenAccountOutput is the Huma output for opening an account.
type OpenAccountOutput struct {
	Status int
	Body   account.Account
}

// OpenAccountHandler handles POST /v1/customer/{customerID}/account.
type OpenAccountHandler struct {
	CustomerService customerCreator
}

// NewOpenAccountHandler creates a new OpenAccountHandler.
func NewOpenAccountHandler(svc customerCreator) *OpenAccountHandler {
	return &OpenAccountHandler{CustomerService: svc}
}

// Register registers the open account endpoint with the Huma API.
func (h *OpenAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "open-account",
		Method:      http.MethodPost,
		Path:        "/v1/customer/{customerID}/account",
		Summary:     "Open an account",
		Description: "Opens a new empty account for an existing customer.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func parseCustomerID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
	}
	return id, nil
}

func (h *OpenAccountHandler) handle(ctx context.Context, input *OpenAccountInput) (*OpenAccountOutput, error) {
	customerID, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	opening, err := parseOpening(input.Body)
	if err != nil {
		return nil, err
	}

	a, err := h.CustomerService.OpenAccount(ctx, customerID, opening)
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to open account")
	}

	return &OpenAccountOutput{
		Status: http.StatusCreated,
		Body:   account.FromService(a),
	}, nil
}
