package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

type blockingAction struct {
	started chan struct{}
	release chan struct{}
	actions.IAction
}

func (b *blockingAction) Perform(ctx context.Context, bank *ledger.Bank) error {
	close(b.started)
	<-b.release
	return nil
}

type failingAction struct {
	actions.IAction
}

func (f *failingAction) Perform(ctx context.Context, bank *ledger.Bank) error {
	return errors.New("boom")
}

func newTestDelegator(t *testing.T) (*OperatorDelegator, *ledger.Bank, *ledger.Account) {
	t.Helper()
	opener := ledger.NewOpener(ledger.NewSequence(), nil)
	account, err := opener.Open(ledger.AccountTypeChecking, "en-US")
	assert.NoError(t, err)
	customer, err := ledger.NewCustomer("Henry", account)
	assert.NoError(t, err)
	bank := ledger.NewBank("ABC Bank", customer)

	d := NewOperatorDelegator(bank, 1)
	d.Start()
	t.Cleanup(d.Stop)
	return d, bank, account
}

// -- OperatorDelegator tests --

func TestProcess_AppliesAction(t *testing.T) {
	d, _, account := newTestDelegator(t)

	action := &actions.Deposit{AccountID: account.ID(), Amount: decimal.NewFromInt(25)}
	err := d.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.True(t, account.CurrentBalance().Equal(decimal.NewFromInt(25)))
	assert.True(t, action.Transaction.Amount.Equal(decimal.NewFromInt(25)))
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d, _, _ := newTestDelegator(t)

	err := d.Process(context.Background(), &failingAction{})

	assert.EqualError(t, err, "boom")
}

func TestProcess_DomainErrorKeepsCategory(t *testing.T) {
	d, _, account := newTestDelegator(t)

	err := d.Process(context.Background(), &actions.Withdraw{AccountID: account.ID(), Amount: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestProcess_ConcurrentDepositsAllApplied(t *testing.T) {
	d, _, account := newTestDelegator(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &actions.Deposit{AccountID: account.ID(), Amount: decimal.NewFromInt(2)}))
		}()
	}
	wg.Wait()

	assert.True(t, account.CurrentBalance().Equal(decimal.NewFromInt(100)))
	assert.Len(t, account.Transactions(), 50)
}

func TestProcess_ContextCancelledWhileWaiting(t *testing.T) {
	d, _, _ := newTestDelegator(t)
	blocker := &blockingAction{started: make(chan struct{}), release: make(chan struct{})}
	defer close(blocker.release)

	go func() { _ = d.Process(context.Background(), blocker) }()
	<-blocker.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Process(ctx, &actions.AccrueInterest{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type gatedDeposit struct {
	entered chan struct{}
	release chan struct{}
	actions.Deposit
}

func (g *gatedDeposit) Perform(ctx context.Context, bank *ledger.Bank) error {
	close(g.entered)
	<-g.release
	return g.Deposit.Perform(ctx, bank)
}

func TestProcess_ContextEndsDuringPerformReportsOutcome(t *testing.T) {
	d, _, account := newTestDelegator(t)
	action := &gatedDeposit{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		Deposit: actions.Deposit{AccountID: account.ID(), Amount: decimal.NewFromInt(5)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- d.Process(ctx, action) }()

	<-action.entered
	cancel()
	time.Sleep(5 * time.Millisecond)
	close(action.release)

	assert.NoError(t, <-result)
	assert.True(t, account.CurrentBalance().Equal(decimal.NewFromInt(5)))
}

func TestProcess_AfterStop(t *testing.T) {
	d, _, account := newTestDelegator(t)
	assert.True(t, d.Running())
	d.Stop()
	assert.False(t, d.Running())

	err := d.Process(context.Background(), &actions.Deposit{AccountID: account.ID(), Amount: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, ErrStopped)
	assert.Empty(t, account.Transactions())
}

// -- AccrualScheduler tests --

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type countingProcessor struct {
	calls atomic.Int32
}

func (c *countingProcessor) Process(ctx context.Context, action actions.IAction) error {
	if _, ok := action.(*actions.AccrueInterest); ok {
		c.calls.Add(1)
	}
	return nil
}

func TestAccrualScheduler_QueuesAccrualEachTick(t *testing.T) {
	processor := &countingProcessor{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	scheduler := NewAccrualScheduler(processor, 5*time.Millisecond, logrus.New())
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return processor.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestAccrualScheduler_AccruesThroughDelegator(t *testing.T) {
	d, _, account := newTestDelegator(t)
	assert.NoError(t, d.Process(context.Background(), &actions.Deposit{AccountID: account.ID(), Amount: decimal.NewFromInt(365000)}))

	scheduler := NewAccrualScheduler(d, time.Hour, logrus.New())
	scheduler.accrue(context.Background())

	// 365000 * 0.001 / 365 = 1
	assert.True(t, account.InterestEarned().Equal(decimal.NewFromInt(1)), account.InterestEarned().String())
}

func TestAccrualScheduler_ErrorIsLogged(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).Return(ErrStopped).Once()

	NewAccrualScheduler(processor, time.Hour, logrus.New()).accrue(context.Background())

	processor.AssertExpectations(t)
}
