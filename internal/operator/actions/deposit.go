package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type Deposit struct {
	AccountID int64
	Amount    decimal.Decimal

	Transaction ledger.Transaction

	IAction
}

func (d *Deposit) Perform(ctx context.Context, bank *ledger.Bank) error {
	account, _, err := bank.AccountByID(d.AccountID)
	if err != nil {
		return err
	}

	tx, err := account.Deposit(d.Amount)
	if err != nil {
		return err
	}

	d.Transaction = tx
	return nil
}

type Withdraw struct {
	AccountID int64
	Amount    decimal.Decimal

	Transaction ledger.Transaction

	IAction
}

func (w *Withdraw) Perform(ctx context.Context, bank *ledger.Bank) error {
	account, _, err := bank.AccountByID(w.AccountID)
	if err != nil {
		return err
	}

	tx, err := account.Withdraw(w.Amount)
	if err != nil {
		return err
	}

	w.Transaction = tx
	return nil
}
