package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// BankService handles bank-wide reporting and interest accrual.
type BankService struct {
	bank      *ledger.Bank
	processor actionProcessor
}

// NewBankService creates a new BankService.
func NewBankService(bank *ledger.Bank, processor actionProcessor) *BankService {
	return &BankService{bank: bank, processor: processor}
}

func (s *BankService) Name(ctx context.Context) string {
	return s.bank.Name()
}

func (s *BankService) Summary(ctx context.Context) string {
	return s.bank.Summary()
}

func (s *BankService) TotalInterestPaid(ctx context.Context) map[string]decimal.Decimal {
	return s.bank.TotalInterestPaid()
}

func (s *BankService) InterestReport(ctx context.Context) string {
	return s.bank.InterestReport()
}

// AccrueInterest runs one bank-wide accrual through the processor.
func (s *BankService) AccrueInterest(ctx context.Context) (ledger.AccrualResult, error) {
	action := &actions.AccrueInterest{}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.AccrualResult{}, err
	}
	return action.Result, nil
}
