package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// Transfer moves money between two accounts owned by the same customer.
type Transfer struct {
	CustomerID    uuid.UUID
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal

	IAction
}

func (t *Transfer) Perform(ctx context.Context, bank *ledger.Bank) error {
	customer, err := bank.CustomerByID(t.CustomerID)
	if err != nil {
		return err
	}

	return customer.TransferByID(t.Amount, t.FromAccountID, t.ToAccountID)
}
