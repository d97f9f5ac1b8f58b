package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// AccountService handles account business logic.
type AccountService struct {
	bank      *ledger.Bank
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(bank *ledger.Bank, processor actionProcessor) *AccountService {
	return &AccountService{bank: bank, processor: processor}
}

// Deposit records a deposit and returns the new ledger entry.
func (s *AccountService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (Transaction, error) {
	action := &actions.Deposit{AccountID: accountID, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return Transaction{}, err
	}
	return transactionFromLedger(accountID, action.Transaction), nil
}

// Withdraw records a withdrawal and returns the new ledger entry.
func (s *AccountService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (Transaction, error) {
	action := &actions.Withdraw{AccountID: accountID, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return Transaction{}, err
	}
	return transactionFromLedger(accountID, action.Transaction), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, accountID int64) (Account, error) {
	a, _, err := s.bank.AccountByID(accountID)
	if err != nil {
		return Account{}, err
	}
	return accountFromLedger(a), nil
}

// Statement returns the account's ledger lines and total.
func (s *AccountService) Statement(ctx context.Context, accountID int64) (ledger.Statement, error) {
	a, _, err := s.bank.AccountByID(accountID)
	if err != nil {
		return ledger.Statement{}, err
	}
	return a.Statement(), nil
}

// Info returns the account's descriptive summary.
func (s *AccountService) Info(ctx context.Context, accountID int64) (ledger.AccountInfo, error) {
	a, _, err := s.bank.AccountByID(accountID)
	if err != nil {
		return ledger.AccountInfo{}, err
	}
	return a.Info(), nil
}
