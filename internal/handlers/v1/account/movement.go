package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/handlers/apierror"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// MovementBody is the request body for a deposit or withdrawal.
type MovementBody struct {
	Amount string `json:"amount" required:"true" minLength:"1" doc:"Decimal amount greater than zero"`
}

// MovementInput is the Huma input for a deposit or withdrawal.
type MovementInput struct {
	AccountID int64 `path:"accountID" doc:"Account number"`
	Body      MovementBody
}

// MovementOutput is the Huma output for a deposit or withdrawal.
type MovementOutput struct {
	Status int
	Body   Transaction
}

// accountMover is the interface for recording deposits and withdrawals.
type accountMover interface {
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (service.Transaction, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (service.Transaction, error)
}

// MovementHandler handles POST /v1/account/{accountID}/deposit and /withdraw.
type MovementHandler struct {
	AccountService accountMover
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(svc accountMover) *MovementHandler {
	return &MovementHandler{AccountService: svc}
}

// Register registers the deposit and withdraw endpoints with the Huma API.
func (h *MovementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/account/{accountID}/deposit",
		Summary:     "Deposit into an account",
		Description: "Appends a deposit to the account ledger.",
		Tags:        []string{"Accounts"},
	}, h.handleDeposit)

	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/account/{accountID}/withdraw",
		Summary:     "Withdraw from an account",
		Description: "Appends a withdrawal to the account ledger. Fails when the balance is too low.",
		Tags:        []string{"Accounts"},
	}, h.handleWithdraw)
}

func (h *MovementHandler) handleDeposit(ctx context.Context, input *MovementInput) (*MovementOutput, error) {
	return h.handle(ctx, input, "deposit", h.AccountService.Deposit)
}

func (h *MovementHandler) handleWithdraw(ctx context.Context, input *MovementInput) (*MovementOutput, error) {
	return h.handle(ctx, input, "withdraw", h.AccountService.Withdraw)
}

func (h *MovementHandler) handle(
	ctx context.Context,
	input *MovementInput,
	name string,
	move func(context.Context, int64, decimal.Decimal) (service.Transaction, error),
) (*MovementOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := ParseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming(name + "Ms")
	}
	tx, err := move(ctx, input.AccountID, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromLedger(err, "failed to "+name)
	}

	if logData != nil {
		logData.AddData("accountID", input.AccountID)
		logData.AddData("transactionID", tx.ID.String())
	}

	return &MovementOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(tx),
	}, nil
}
