package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// GetAccountInput is the Huma input for reading an account.
type GetAccountInput struct {
	AccountID int64 `path:"accountID" doc:"Account number"`
}

// GetAccountResponse is the account plus its rendered information block.
type GetAccountResponse struct {
	Account
	Info string `json:"info" doc:"Human readable account information"`
}

// GetAccountOutput is the Huma output for reading an account.
type GetAccountOutput struct {
	Body GetAccountResponse
}

// accountReader is the interface for reading accounts.
type accountReader interface {
	GetAccount(ctx context.Context, accountID int64) (service.Account, error)
	Info(ctx context.Context, accountID int64) (ledger.AccountInfo, error)
}

// GetAccountHandler handles GET /v1/account/{accountID}.
type GetAccountHandler struct {
	AccountService accountReader
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountReader) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}",
		Summary:     "Get an account",
		Description: "Returns the account with its balance and accrued interest.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// readTimer adds every service read of one request into a single readAccountMs timing.
func readTimer(logData *logging.LogData) func() {
	if logData == nil {
		return func() {}
	}
	return logData.AddToExistingTiming("readAccountMs")
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := readTimer(logData)
	a, err := h.AccountService.GetAccount(ctx, input.AccountID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get account")
	}

	stopTimer = readTimer(logData)
	info, err := h.AccountService.Info(ctx, input.AccountID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to get account")
	}

	return &GetAccountOutput{Body: GetAccountResponse{Account: FromService(a), Info: info.String()}}, nil
}
