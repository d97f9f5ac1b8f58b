package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (service.Transaction, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(service.Transaction), args.Error(1)
}

func (m *mockAccountService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (service.Transaction, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(service.Transaction), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, accountID int64) (service.Account, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(service.Account), args.Error(1)
}

func (m *mockAccountService) Info(ctx context.Context, accountID int64) (ledger.AccountInfo, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(ledger.AccountInfo), args.Error(1)
}

func (m *mockAccountService) Statement(ctx context.Context, accountID int64) (ledger.Statement, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(ledger.Statement), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewMovementHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewStatementHandler(svc).Register(api)
	return api
}

var (
	openedAt = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	usd      = ledger.Currency{Code: "USD", Symbol: "$"}
)

// -- ParseAmount tests --

func TestParseAmount_Valid(t *testing.T) {
	amount, err := ParseAmount("12.50")

	assert.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.50")))
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("twelve")

	assert.Error(t, err)
}

// -- deposit / withdraw tests --

func TestHTTP_Deposit_Success(t *testing.T) {
	txID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("Deposit", mock.Anything, int64(7), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("12.50"))
	})).Return(service.Transaction{
		ID:        txID,
		AccountID: 7,
		Kind:      ledger.TransactionKindDeposit,
		Amount:    decimal.RequireFromString("12.50"),
		Timestamp: openedAt,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/7/deposit", MovementBody{Amount: "12.50"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "deposit", body.Kind)
	assert.Equal(t, "12.5", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Deposit_InvalidAmount(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/7/deposit", MovementBody{Amount: "lots"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Deposit")
}

func TestHTTP_Deposit_NonPositive(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("Deposit", mock.Anything, int64(7), mock.Anything).Return(service.Transaction{}, ledger.ErrNonPositiveAmount)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/7/deposit", MovementBody{Amount: "-1"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Withdraw_InsufficientFunds(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("Withdraw", mock.Anything, int64(7), mock.Anything).Return(service.Transaction{}, ledger.ErrInsufficientFunds)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/7/withdraw", MovementBody{Amount: "100"})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Withdraw_UnknownAccount(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("Withdraw", mock.Anything, int64(9), mock.Anything).Return(service.Transaction{}, ledger.ErrAccountNotFound)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/9/withdraw", MovementBody{Amount: "1"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Withdraw_MissingAmount(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account/7/withdraw", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Withdraw")
}

// -- get account tests --

func TestHTTP_GetAccount_Success(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, int64(3)).Return(service.Account{
		ID:             3,
		Type:           ledger.AccountTypeSavings,
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		Balance:        decimal.NewFromInt(1500),
		InterestEarned: decimal.RequireFromString("0.01"),
		CreatedAt:      openedAt,
	}, nil)
	mockSvc.On("Info", mock.Anything, int64(3)).Return(ledger.AccountInfo{
		ID:          3,
		AccountType: ledger.AccountTypeSavings,
		Currency:    usd,
		CreatedAt:   openedAt,
		Total:       decimal.NewFromInt(1500),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetAccountResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.ID)
	assert.Equal(t, "Savings Account", body.Type)
	assert.Equal(t, "1500", body.Balance)
	assert.Equal(t, "2025-07-01T12:00:00Z", body.CreatedAt)
	assert.Contains(t, body.Info, "Total: $1,500.00")
}

func TestHTTP_GetAccount_LogsReadTiming(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, int64(3)).Return(service.Account{ID: 3, CreatedAt: openedAt}, nil)
	mockSvc.On("Info", mock.Anything, int64(3)).Return(ledger.AccountInfo{ID: 3, Currency: usd, CreatedAt: openedAt}, nil)

	logger := logging.SetupLogging(logrus.InfoLevel)
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	_, api := humatest.New(t)
	api.UseMiddleware(logging.HumaMiddleware(logger))
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/3")

	assert.Equal(t, http.StatusOK, resp.Code)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var last map[string]any
	assert.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "Handler.get-account.Complete", last["msg"])
	assert.Contains(t, last, "readAccountMs")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, int64(3)).Return(service.Account{}, ledger.ErrAccountNotFound)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/3")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
}

// -- statement tests --

func TestHTTP_Statement_Success(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("Statement", mock.Anything, int64(3)).Return(ledger.Statement{
		AccountID:   3,
		AccountType: ledger.AccountTypeChecking,
		Currency:    usd,
		Lines: []ledger.StatementLine{
			{Kind: ledger.TransactionKindDeposit, Amount: decimal.NewFromInt(100)},
			{Kind: ledger.TransactionKindWithdrawal, Amount: decimal.NewFromInt(40)},
		},
		Total: decimal.NewFromInt(60),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/3/statement")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body StatementResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Lines, 2)
	assert.Equal(t, "withdrawal", body.Lines[1].Kind)
	assert.Equal(t, "60", body.Total)
	assert.Equal(t, "Checking Account\n  deposit $100.00\n  withdrawal $40.00\nTotal: $60.00\n", body.Text)
}

func TestHTTP_Statement_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("Statement", mock.Anything, int64(3)).Return(ledger.Statement{}, errors.New("boom"))

	resp := newTestAPI(t, mockSvc).Get("/v1/account/3/statement")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
