package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) AdvanceDays(days int) {
	c.now = c.now.Add(time.Duration(days) * 24 * time.Hour)
}

func newTestOpener(clock Clock) *Opener {
	return NewOpener(NewSequence(), clock)
}

func openAccount(t *testing.T, o *Opener, accountType AccountType, locale string) *Account {
	t.Helper()
	a, err := o.Open(accountType, locale)
	require.NoError(t, err)
	return a
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDeposit(t *testing.T, a *Account, amount string) {
	t.Helper()
	_, err := a.Deposit(dec(amount))
	require.NoError(t, err)
}

func mustWithdraw(t *testing.T, a *Account, amount string) {
	t.Helper()
	_, err := a.Withdraw(dec(amount))
	require.NoError(t, err)
}

func sumLedger(a *Account) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range a.Transactions() {
		total = total.Add(tx.Amount)
	}
	return total
}
