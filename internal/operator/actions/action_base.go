package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// IAction is one mutation of the bank. Results are written back onto the action.
type IAction interface {
	Perform(ctx context.Context, bank *ledger.Bank) error
}

// Opening describes one account to open for a customer.
type Opening struct {
	Type   ledger.AccountType
	Locale string
}

func openAll(opener *ledger.Opener, openings []Opening) ([]*ledger.Account, error) {
	accounts := make([]*ledger.Account, 0, len(openings))
	for _, o := range openings {
		a, err := opener.Open(o.Type, o.Locale)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
