package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const summaryLinePrefix = "\n - "

// Bank groups customers for bank-wide reporting. Accounts stay owned by their customer.
type Bank struct {
	mu sync.RWMutex

	name      string
	customers []*Customer
}

func NewBank(name string, customers ...*Customer) *Bank {
	b := &Bank{name: name}
	for _, c := range customers {
		if c != nil {
			b.customers = append(b.customers, c)
		}
	}
	return b
}

func (b *Bank) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

func (b *Bank) SetName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
}

// AddCustomer appends a customer. Duplicates are not rejected.
func (b *Bank) AddCustomer(customer *Customer) error {
	if customer == nil {
		return ErrNilCustomer
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.customers = append(b.customers, customer)
	return nil
}

// Customers returns a copy of the customer list in insertion order.
func (b *Bank) Customers() []*Customer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

// Accounts flattens every customer's accounts, customers in insertion order.
func (b *Bank) Accounts() []*Account {
	var out []*Account
	for _, c := range b.Customers() {
		out = append(out, c.Accounts()...)
	}
	return out
}

// CustomerByFullName returns the first customer with that exact name.
func (b *Bank) CustomerByFullName(fullName string) (*Customer, error) {
	for _, c := range b.Customers() {
		if c.FullName() == fullName {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: name %q", ErrCustomerNotFound, fullName)
}

func (b *Bank) CustomerByID(id uuid.UUID) (*Customer, error) {
	for _, c := range b.Customers() {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", ErrCustomerNotFound, id)
}

// AccountByID finds an account anywhere in the bank along with the customer holding it.
func (b *Bank) AccountByID(id int64) (*Account, *Customer, error) {
	for _, c := range b.Customers() {
		if a, err := c.AccountByID(id); err == nil {
			return a, c, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
}

// Summary lists one line per customer, sorted by the rendered line.
func (b *Bank) Summary() string {
	customers := b.Customers()
	lines := make([]string, len(customers))
	for i, c := range customers {
		lines[i] = c.Summary()
	}
	sort.Strings(lines)

	var sb strings.Builder
	sb.WriteString("Bank Summary")
	for _, l := range lines {
		sb.WriteString(summaryLinePrefix)
		sb.WriteString(l)
	}
	return sb.String()
}

// TotalInterestPaid sums the interest of every account in the bank per currency symbol.
func (b *Bank) TotalInterestPaid() map[string]decimal.Decimal {
	return TotalInterestEarned(b.Accounts())
}

// InterestReport renders TotalInterestPaid, one currency per line ordered by symbol.
func (b *Bank) InterestReport() string {
	totals := b.TotalInterestPaid()

	var sb strings.Builder
	sb.WriteString("Total Interest Paid:")
	for _, symbol := range sortedSymbols(totals) {
		sb.WriteString(summaryLinePrefix)
		sb.WriteString(formatSigned(symbol, totals[symbol]))
	}
	return sb.String()
}

// AccrualResult describes one bank-wide accrual run.
type AccrualResult struct {
	Accounts int
	Accrued  map[string]decimal.Decimal
}

// AccrueInterest accrues one day of interest on every account of every customer.
func (b *Bank) AccrueInterest() AccrualResult {
	result := AccrualResult{Accrued: make(map[string]decimal.Decimal)}
	for _, a := range b.Accounts() {
		accrued := a.AccrueInterest()
		symbol := a.Currency().Symbol
		result.Accrued[symbol] = result.Accrued[symbol].Add(accrued)
		result.Accounts++
	}
	return result
}

func sortedSymbols(totals map[string]decimal.Decimal) []string {
	symbols := make([]string, 0, len(totals))
	for s := range totals {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
