package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// CustomerService handles customer business logic.
type CustomerService struct {
	bank          *ledger.Bank
	opener        *ledger.Opener
	processor     actionProcessor
	defaultLocale string
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(bank *ledger.Bank, opener *ledger.Opener, processor actionProcessor, defaultLocale string) *CustomerService {
	return &CustomerService{
		bank:          bank,
		opener:        opener,
		processor:     processor,
		defaultLocale: defaultLocale,
	}
}

// CreateCustomer opens the requested accounts and adds the new customer to the bank.
func (s *CustomerService) CreateCustomer(ctx context.Context, fullName string, openings []AccountOpening) (Customer, error) {
	action := &actions.AddCustomer{
		Opener:   s.opener,
		FullName: fullName,
		Openings: make([]actions.Opening, len(openings)),
	}
	for i, o := range openings {
		action.Openings[i] = o.toAction(s.defaultLocale)
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return Customer{}, err
	}
	return customerFromLedger(action.Customer), nil
}

// OpenAccount opens one more account for an existing customer.
func (s *CustomerService) OpenAccount(ctx context.Context, customerID uuid.UUID, opening AccountOpening) (Account, error) {
	action := &actions.OpenAccount{
		Opener:     s.opener,
		CustomerID: customerID,
		Opening:    opening.toAction(s.defaultLocale),
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return Account{}, err
	}
	return accountFromLedger(action.Account), nil
}

// Transfer moves amount between two of the customer's accounts.
func (s *CustomerService) Transfer(ctx context.Context, customerID uuid.UUID, fromID, toID int64, amount decimal.Decimal) error {
	return s.processor.Process(ctx, &actions.Transfer{
		CustomerID:    customerID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
	})
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	c, err := s.bank.CustomerByID(id)
	if err != nil {
		return Customer{}, err
	}
	return customerFromLedger(c), nil
}

// FindByName returns the first customer whose full name matches exactly.
func (s *CustomerService) FindByName(ctx context.Context, fullName string) (Customer, error) {
	c, err := s.bank.CustomerByFullName(fullName)
	if err != nil {
		return Customer{}, err
	}
	return customerFromLedger(c), nil
}

// TotalInterestEarned sums the customer's interest per currency symbol.
func (s *CustomerService) TotalInterestEarned(ctx context.Context, id uuid.UUID) (map[string]decimal.Decimal, error) {
	c, err := s.bank.CustomerByID(id)
	if err != nil {
		return nil, err
	}
	return c.TotalInterestEarned(), nil
}

// Statement renders the statement of every account of the customer.
func (s *CustomerService) Statement(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := s.bank.CustomerByID(id)
	if err != nil {
		return "", err
	}
	return c.StatementForAllAccounts(), nil
}
