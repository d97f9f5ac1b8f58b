package customer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// TransferBody is the request body for a transfer.
type TransferBody struct {
	FromAccountID int64  `json:"fromAccountID" doc:"Sending account number"`
	ToAccountID   int64  `json:"toAccountID" doc:"Receiving account number"`
	Amount        string `json:"amount" minLength:"1" doc:"Decimal amount greater than zero"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	CustomerID string `path:"customerID" doc:"Customer UUID"`
	Body       TransferBody
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Status int
}

// transferrer is the interface for moving money between a customer's accounts.
type transferrer interface {
	Transfer(ctx context.Context, customerID uuid.UUID, fromID, toID int64, amount decimal.Decimal) error
}

// TransferHandler handles POST /v1/customer/{customerID}/transfer.
type TransferHandler struct {
	CustomerService transferrer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc transferrer) *TransferHandler {
	return &TransferHandler{CustomerService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/customer/{customerID}/transfer",
		Summary:     "Transfer between accounts",
		Description: "Withdraws from one of the customer's accounts and deposits into another. Either both legs apply or neither does.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	customerID, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	amount, err := account.ParseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err = h.CustomerService.Transfer(ctx, customerID, input.Body.FromAccountID, input.Body.ToAccountID, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to transfer")
	}

	return &TransferOutput{Status: http.StatusNoContent}, nil
}
