package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Customer owns one or more accounts. Full names are not unique; ID is.
type Customer struct {
	mu sync.RWMutex

	id       uuid.UUID
	fullName string
	accounts []*Account
}

// NewCustomer opens a customer holding the given accounts. At least one account is required.
func NewCustomer(fullName string, accounts ...*Account) (*Customer, error) {
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	c := &Customer{
		id:       uuid.Must(uuid.NewV4()),
		fullName: fullName,
	}
	for _, a := range accounts {
		if err := c.OpenAccount(a); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Customer) ID() uuid.UUID {
	return c.id
}

func (c *Customer) FullName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fullName
}

func (c *Customer) SetFullName(fullName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fullName = fullName
}

// Accounts returns the customer's accounts in opening order. The slice is a copy.
func (c *Customer) Accounts() []*Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Customer) NumberOfAccounts() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.accounts)
}

// OpenAccount adds an account to the customer. Adding the same account twice is a no-op.
func (c *Customer) OpenAccount(account *Account) error {
	if account == nil {
		return ErrNilAccount
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.accounts {
		if a == account {
			return nil
		}
	}
	c.accounts = append(c.accounts, account)
	return nil
}

// AccountByID finds one of the customer's accounts.
func (c *Customer) AccountByID(id int64) (*Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.accounts {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
}

// Transfer moves amount between two accounts. It fails without touching either ledger when
// the accounts are the same, the amount is not positive or the sender lacks funds.
func (c *Customer) Transfer(amount decimal.Decimal, from, to *Account) error {
	if from == nil || to == nil {
		return ErrNilAccount
	}
	return transfer(amount, from, to)
}

// TransferByID is Transfer for two accounts of this customer addressed by id.
func (c *Customer) TransferByID(amount decimal.Decimal, fromID, toID int64) error {
	from, err := c.AccountByID(fromID)
	if err != nil {
		return err
	}
	to, err := c.AccountByID(toID)
	if err != nil {
		return err
	}
	return c.Transfer(amount, from, to)
}

// Summary renders "Name: N account(s)".
func (c *Customer) Summary() string {
	return fmt.Sprintf("%s: %s", c.FullName(), pluralize(c.NumberOfAccounts(), "account"))
}

// TotalInterestEarned sums the interest of the customer's accounts per currency symbol.
func (c *Customer) TotalInterestEarned() map[string]decimal.Decimal {
	return TotalInterestEarned(c.Accounts())
}

// TotalInterestEarned sums InterestEarned per currency symbol over any set of accounts.
func TotalInterestEarned(accounts []*Account) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, a := range accounts {
		entry := a.InterestAndCurrency()
		totals[entry.Symbol] = totals[entry.Symbol].Add(entry.Amount)
	}
	return totals
}

// StatementForAllAccounts renders every account statement under the customer's name.
func (c *Customer) StatementForAllAccounts() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's statement\n", c.FullName())
	for _, a := range c.Accounts() {
		b.WriteString("\n")
		b.WriteString(a.Statement().String())
	}
	return b.String()
}

func (c *Customer) AccountsInfo() []AccountInfo {
	accounts := c.Accounts()
	out := make([]AccountInfo, len(accounts))
	for i, a := range accounts {
		out[i] = a.Info()
	}
	return out
}
