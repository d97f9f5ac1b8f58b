package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one transaction as shown on a statement.
type StatementLine struct {
	Kind   TransactionKind
	Amount decimal.Decimal
}

// Statement lists an account's transactions in ledger order together with the balance.
type Statement struct {
	AccountID   int64
	AccountType AccountType
	Currency    Currency
	Lines       []StatementLine
	Total       decimal.Decimal
}

func (a *Account) Statement() Statement {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines := make([]StatementLine, len(a.transactions))
	for i, t := range a.transactions {
		lines[i] = StatementLine{Kind: t.Kind, Amount: t.Amount}
	}

	return Statement{
		AccountID:   a.id,
		AccountType: a.accountType,
		Currency:    a.currency,
		Lines:       lines,
		Total:       a.balanceLocked(),
	}
}

func (s Statement) String() string {
	var b strings.Builder
	b.WriteString(s.AccountType.String())
	b.WriteString("\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "  %s %s\n", l.Kind, s.Currency.Format(l.Amount))
	}
	fmt.Fprintf(&b, "Total: %s\n", s.Currency.Format(s.Total))
	return b.String()
}

// AccountInfo is the header data of an account.
type AccountInfo struct {
	ID          int64
	AccountType AccountType
	Currency    Currency
	CreatedAt   time.Time
	Total       decimal.Decimal
}

func (a *Account) Info() AccountInfo {
	return AccountInfo{
		ID:          a.id,
		AccountType: a.accountType,
		Currency:    a.currency,
		CreatedAt:   a.createdAt,
		Total:       a.CurrentBalance(),
	}
}

func (i AccountInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", i.AccountType)
	fmt.Fprintf(&b, "ID: %d\n", i.ID)
	fmt.Fprintf(&b, "Currency: %s\n", i.Currency.Symbol)
	fmt.Fprintf(&b, "Open on: %s\n", i.CreatedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "Total: %s\n", i.Currency.Format(i.Total))
	return b.String()
}
