package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type AccrueInterest struct {
	Result ledger.AccrualResult

	IAction
}

func (a *AccrueInterest) Perform(ctx context.Context, bank *ledger.Bank) error {
	a.Result = bank.AccrueInterest()
	return nil
}
