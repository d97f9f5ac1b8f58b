package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// TransactionKind tells a credit from a debit.
type TransactionKind int8

const (
	TransactionKindDeposit TransactionKind = iota
	TransactionKindWithdrawal
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "deposit"
	case TransactionKindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Transaction is one ledger entry. Amount is signed: deposits are positive, withdrawals negative.
// Transactions are only created by Account and handed out by value.
type Transaction struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Kind      TransactionKind
	Timestamp time.Time
}

func newTransaction(amount decimal.Decimal, kind TransactionKind, at time.Time) Transaction {
	return Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    amount,
		Kind:      kind,
		Timestamp: at,
	}
}

// Age is the time elapsed between the transaction and now.
func (t Transaction) Age(now time.Time) time.Duration {
	return now.Sub(t.Timestamp)
}

// IsOlderThan reports whether more than days full days separate the transaction from now.
func (t Transaction) IsOlderThan(days int, now time.Time) bool {
	return t.Age(now) > time.Duration(days)*day
}
