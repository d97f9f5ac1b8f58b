package ledger

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Opener creates accounts with unique ids drawn from its IDGenerator.
type Opener struct {
	ids   IDGenerator
	clock Clock
}

// NewOpener returns an Opener. A nil ids means a fresh Sequence, a nil clock means SystemClock.
func NewOpener(ids IDGenerator, clock Clock) *Opener {
	if ids == nil {
		ids = NewSequence()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Opener{ids: ids, clock: clock}
}

// Open validates the account type and locale, then creates an empty account.
func (o *Opener) Open(accountType AccountType, locale string) (*Account, error) {
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccountType, accountType)
	}
	cur, err := ResolveCurrency(locale)
	if err != nil {
		return nil, err
	}

	return &Account{
		lockKey:     uuid.Must(uuid.NewV4()),
		id:          o.ids.NextID(),
		accountType: accountType,
		currency:    cur,
		createdAt:   o.clock.Now(),
		clock:       o.clock,
	}, nil
}

// Account owns an append-only ledger of transactions. The balance is always recomputed from the ledger.
type Account struct {
	mu sync.Mutex

	// lockKey orders the locks of a transfer. Ids are only unique per IDGenerator.
	lockKey     uuid.UUID
	lockKeyOnce sync.Once

	id             int64
	accountType    AccountType
	currency       Currency
	createdAt      time.Time
	transactions   []Transaction
	interestEarned decimal.Decimal
	clock          Clock
}

func (a *Account) ID() int64 {
	return a.id
}

func (a *Account) Type() AccountType {
	return a.accountType
}

func (a *Account) Currency() Currency {
	return a.currency
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Transactions returns a copy of the ledger in insertion order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

func (a *Account) InterestEarned() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interestEarned
}

// CurrentBalance sums every transaction amount.
func (a *Account) CurrentBalance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balanceLocked()
}

// Deposit records a credit of amount.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.appendLocked(amount, TransactionKindDeposit), nil
}

// Withdraw records a debit of amount. The balance may reach zero but never go below it.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.checkFundsLocked(amount); err != nil {
		return Transaction{}, err
	}
	return a.appendLocked(amount.Neg(), TransactionKindWithdrawal), nil
}

// AccrueInterest adds one day of interest to InterestEarned and returns the amount added.
// Every call accrues again; the caller is expected to invoke it once per account per day.
func (a *Account) AccrueInterest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	in := accrualInput{Balance: a.balanceLocked(), Now: a.now()}
	if last, ok := a.lastWithdrawalLocked(); ok {
		in.LastWithdrawal = &last
	}

	accrued := accrualPolicies[a.accountType](in)
	a.interestEarned = a.interestEarned.Add(accrued)
	return accrued
}

// LastWithdrawal returns the most recent withdrawal by ledger order.
func (a *Account) LastWithdrawal() (Transaction, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastWithdrawalLocked()
}

// InterestEntry pairs an earned amount with the symbol it is reported under.
type InterestEntry struct {
	Symbol string
	Amount decimal.Decimal
}

func (a *Account) InterestAndCurrency() InterestEntry {
	return InterestEntry{Symbol: a.currency.Symbol, Amount: a.InterestEarned()}
}

func (a *Account) balanceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.transactions {
		total = total.Add(t.Amount)
	}
	return total
}

func (a *Account) checkFundsLocked(amount decimal.Decimal) error {
	if balance := a.balanceLocked(); amount.GreaterThan(balance) {
		return fmt.Errorf("%w: account %d has %s, requested %s", ErrInsufficientFunds, a.id, balance, amount)
	}
	return nil
}

func (a *Account) appendLocked(amount decimal.Decimal, kind TransactionKind) Transaction {
	t := newTransaction(amount, kind, a.now())
	a.transactions = append(a.transactions, t)
	return t
}

func (a *Account) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock.Now()
}

func (a *Account) orderKey() uuid.UUID {
	a.lockKeyOnce.Do(func() {
		if a.lockKey == uuid.Nil {
			a.lockKey = uuid.Must(uuid.NewV4())
		}
	})
	return a.lockKey
}

func (a *Account) lastWithdrawalLocked() (Transaction, bool) {
	for i := len(a.transactions) - 1; i >= 0; i-- {
		if a.transactions[i].Kind == TransactionKindWithdrawal {
			return a.transactions[i], true
		}
	}
	return Transaction{}, false
}

// transfer moves amount from one account to another. Both legs are checked before either is written,
// so the pair of ledgers either both change or neither does.
func transfer(amount decimal.Decimal, from, to *Account) error {
	if from == to {
		return ErrSameAccount
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	first, second := from, to
	if bytes.Compare(second.orderKey().Bytes(), first.orderKey().Bytes()) < 0 {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := from.checkFundsLocked(amount); err != nil {
		return err
	}
	from.appendLocked(amount.Neg(), TransactionKindWithdrawal)
	to.appendLocked(amount, TransactionKindDeposit)
	return nil
}
