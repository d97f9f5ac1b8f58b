package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type AddCustomer struct {
	Opener   *ledger.Opener
	FullName string
	Openings []Opening

	Customer *ledger.Customer

	IAction
}

func (c *AddCustomer) Perform(ctx context.Context, bank *ledger.Bank) error {
	accounts, err := openAll(c.Opener, c.Openings)
	if err != nil {
		return err
	}

	customer, err := ledger.NewCustomer(c.FullName, accounts...)
	if err != nil {
		return err
	}

	if err = bank.AddCustomer(customer); err != nil {
		return err
	}

	c.Customer = customer
	return nil
}
