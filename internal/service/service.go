package service

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// actionProcessor runs a mutation against the bank, normally the operator delegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Customer *CustomerService
	Account  *AccountService
	Bank     *BankService
}

// NewService wires the services around one bank. Writes go through processor, reads go to the bank directly.
func NewService(bank *ledger.Bank, opener *ledger.Opener, processor actionProcessor, defaultLocale string) *Service {
	return &Service{
		Customer: NewCustomerService(bank, opener, processor, defaultLocale),
		Account:  NewAccountService(bank, processor),
		Bank:     NewBankService(bank, processor),
	}
}
