package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// Account is a point-in-time view of a ledger account.
type Account struct {
	ID             int64
	Type           ledger.AccountType
	CurrencyCode   string
	CurrencySymbol string
	Balance        decimal.Decimal
	InterestEarned decimal.Decimal
	CreatedAt      time.Time
}

// Transaction is a ledger entry in the service layer.
type Transaction struct {
	ID        uuid.UUID
	AccountID int64
	Kind      ledger.TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Customer is a point-in-time view of a customer and their accounts.
type Customer struct {
	ID       uuid.UUID
	FullName string
	Accounts []Account
}

// AccountOpening requests a new account. An empty Locale means the configured default.
type AccountOpening struct {
	Type   ledger.AccountType
	Locale string
}

func accountFromLedger(a *ledger.Account) Account {
	cur := a.Currency()
	return Account{
		ID:             a.ID(),
		Type:           a.Type(),
		CurrencyCode:   cur.Code,
		CurrencySymbol: cur.Symbol,
		Balance:        a.CurrentBalance(),
		InterestEarned: a.InterestEarned(),
		CreatedAt:      a.CreatedAt(),
	}
}

func customerFromLedger(c *ledger.Customer) Customer {
	accounts := c.Accounts()
	out := Customer{
		ID:       c.ID(),
		FullName: c.FullName(),
		Accounts: make([]Account, len(accounts)),
	}
	for i, a := range accounts {
		out.Accounts[i] = accountFromLedger(a)
	}
	return out
}

func transactionFromLedger(accountID int64, tx ledger.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID,
		AccountID: accountID,
		Kind:      tx.Kind,
		Amount:    tx.Amount,
		Timestamp: tx.Timestamp,
	}
}

func (o AccountOpening) toAction(defaultLocale string) actions.Opening {
	locale := o.Locale
	if locale == "" {
		locale = defaultLocale
	}
	return actions.Opening{Type: o.Type, Locale: locale}
}
