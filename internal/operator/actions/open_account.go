package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type OpenAccount struct {
	Opener     *ledger.Opener
	CustomerID uuid.UUID
	Opening    Opening

	Account *ledger.Account

	IAction
}

func (o *OpenAccount) Perform(ctx context.Context, bank *ledger.Bank) error {
	customer, err := bank.CustomerByID(o.CustomerID)
	if err != nil {
		return err
	}

	account, err := o.Opener.Open(o.Opening.Type, o.Opening.Locale)
	if err != nil {
		return err
	}

	if err = customer.OpenAccount(account); err != nil {
		return err
	}

	o.Account = account
	return nil
}
