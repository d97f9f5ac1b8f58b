package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// inlineProcessor performs actions on the caller's goroutine.
type inlineProcessor struct {
	bank *ledger.Bank
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.bank)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	bank := ledger.NewBank("ABC Bank")
	return NewService(bank, ledger.NewOpener(ledger.NewSequence(), nil), inlineProcessor{bank: bank}, "en-US")
}

func createHenry(t *testing.T, svc *Service, openings ...AccountOpening) Customer {
	t.Helper()
	c, err := svc.Customer.CreateCustomer(context.Background(), "Henry", openings)
	assert.NoError(t, err)
	return c
}

var checking = AccountOpening{Type: ledger.AccountTypeChecking}

// -- CustomerService tests --

func TestCreateCustomer_DefaultLocale(t *testing.T) {
	svc := newTestService(t)

	c := createHenry(t, svc, checking, AccountOpening{Type: ledger.AccountTypeSavings, Locale: "en-GB"})

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "Henry", c.FullName)
	assert.Len(t, c.Accounts, 2)
	assert.Equal(t, "USD", c.Accounts[0].CurrencyCode)
	assert.Equal(t, "$", c.Accounts[0].CurrencySymbol)
	assert.Equal(t, "£", c.Accounts[1].CurrencySymbol)
	assert.True(t, c.Accounts[0].Balance.IsZero())
}

func TestCreateCustomer_NoAccounts(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Customer.CreateCustomer(context.Background(), "Henry", nil)

	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)
}

func TestCreateCustomer_ProcessorError(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.AddCustomer")).Return(errors.New("queue full"))
	bank := ledger.NewBank("ABC Bank")
	svc := NewService(bank, ledger.NewOpener(ledger.NewSequence(), nil), processor, "en-US")

	c, err := svc.Customer.CreateCustomer(context.Background(), "Henry", []AccountOpening{checking})

	assert.EqualError(t, err, "queue full")
	assert.Equal(t, Customer{}, c)
	processor.AssertExpectations(t)
}

func TestOpenAccount_AddsToCustomer(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking)

	a, err := svc.Customer.OpenAccount(context.Background(), c.ID, AccountOpening{Type: ledger.AccountTypeMaxiSavings, Locale: "ja-JP"})

	assert.NoError(t, err)
	assert.Equal(t, ledger.AccountTypeMaxiSavings, a.Type)
	assert.Equal(t, "¥", a.CurrencySymbol)
	got, err := svc.Customer.GetCustomer(context.Background(), c.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Accounts, 2)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Customer.GetCustomer(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestFindByName(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking)

	found, err := svc.Customer.FindByName(context.Background(), "Henry")
	assert.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = svc.Customer.FindByName(context.Background(), "henry")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTransfer_MovesMoney(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking, checking)
	from, to := c.Accounts[0].ID, c.Accounts[1].ID
	_, err := svc.Account.Deposit(context.Background(), from, decimal.NewFromInt(100))
	assert.NoError(t, err)

	err = svc.Customer.Transfer(context.Background(), c.ID, from, to, decimal.NewFromInt(30))
	assert.NoError(t, err)

	fromAccount, _ := svc.Account.GetAccount(context.Background(), from)
	toAccount, _ := svc.Account.GetAccount(context.Background(), to)
	assert.True(t, fromAccount.Balance.Equal(decimal.NewFromInt(70)))
	assert.True(t, toAccount.Balance.Equal(decimal.NewFromInt(30)))
}

func TestTransfer_SameAccount(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking)
	id := c.Accounts[0].ID

	err := svc.Customer.Transfer(context.Background(), c.ID, id, id, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, ledger.ErrUnsupportedOperation)
}

func TestTotalInterestEarned_ByCurrency(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking, AccountOpening{Type: ledger.AccountTypeChecking, Locale: "en-GB"})
	_, err := svc.Account.Deposit(context.Background(), c.Accounts[0].ID, decimal.NewFromInt(365000))
	assert.NoError(t, err)
	_, err = svc.Bank.AccrueInterest(context.Background())
	assert.NoError(t, err)

	totals, err := svc.Customer.TotalInterestEarned(context.Background(), c.ID)

	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.True(t, totals["$"].Equal(decimal.NewFromInt(1)))
	assert.True(t, totals["£"].IsZero())
}

func TestCustomerStatement(t *testing.T) {
	svc := newTestService(t)
	c := createHenry(t, svc, checking)
	_, err := svc.Account.Deposit(context.Background(), c.Accounts[0].ID, decimal.NewFromInt(100))
	assert.NoError(t, err)

	statement, err := svc.Customer.Statement(context.Background(), c.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Henry's statement\n\nChecking Account\n  deposit $100.00\nTotal: $100.00\n", statement)
}

// -- AccountService tests --

func TestDeposit_ReturnsTransaction(t *testing.T) {
	svc := newTestService(t)
	id := createHenry(t, svc, checking).Accounts[0].ID

	tx, err := svc.Account.Deposit(context.Background(), id, decimal.RequireFromString("12.50"))

	assert.NoError(t, err)
	assert.Equal(t, id, tx.AccountID)
	assert.Equal(t, ledger.TransactionKindDeposit, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("12.50")))
	assert.NotEqual(t, uuid.Nil, tx.ID)
}

func TestDeposit_NonPositive(t *testing.T) {
	svc := newTestService(t)
	id := createHenry(t, svc, checking).Accounts[0].ID

	_, err := svc.Account.Deposit(context.Background(), id, decimal.Zero)

	assert.ErrorIs(t, err, ledger.ErrInvalidArgument)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	svc := newTestService(t)
	id := createHenry(t, svc, checking).Accounts[0].ID

	_, err := svc.Account.Withdraw(context.Background(), id, decimal.NewFromInt(5))

	assert.ErrorIs(t, err, ledger.ErrUnsupportedOperation)
}

func TestAccountStatementAndInfo(t *testing.T) {
	svc := newTestService(t)
	id := createHenry(t, svc, checking).Accounts[0].ID
	_, err := svc.Account.Deposit(context.Background(), id, decimal.NewFromInt(100))
	assert.NoError(t, err)
	_, err = svc.Account.Withdraw(context.Background(), id, decimal.NewFromInt(40))
	assert.NoError(t, err)

	statement, err := svc.Account.Statement(context.Background(), id)
	assert.NoError(t, err)
	assert.Len(t, statement.Lines, 2)
	assert.True(t, statement.Total.Equal(decimal.NewFromInt(60)))

	info, err := svc.Account.Info(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, info.ID)
	assert.True(t, info.Total.Equal(decimal.NewFromInt(60)))
}

func TestGetAccount_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Account.GetAccount(context.Background(), 999)

	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

// -- BankService tests --

func TestBankSummaryAndReport(t *testing.T) {
	svc := newTestService(t)
	createHenry(t, svc, checking, checking)

	assert.Equal(t, "ABC Bank", svc.Bank.Name(context.Background()))
	assert.Equal(t, "Bank Summary\n - Henry: 2 accounts", svc.Bank.Summary(context.Background()))
	assert.Len(t, svc.Bank.TotalInterestPaid(context.Background()), 1)
	assert.Contains(t, svc.Bank.InterestReport(context.Background()), "Total Interest Paid:")
}

func TestBankAccrueInterest(t *testing.T) {
	svc := newTestService(t)
	createHenry(t, svc, checking, AccountOpening{Type: ledger.AccountTypeSavings})

	result, err := svc.Bank.AccrueInterest(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Accounts)
}
