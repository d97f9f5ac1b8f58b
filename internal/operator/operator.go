package operator

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	bank  *ledger.Bank
	queue chan ActionItem
}

func NewOperator(bank *ledger.Bank, queue chan ActionItem) *Operator {
	return &Operator{
		bank:  bank,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	close(item.started)

	// The caller may have given up while the item sat in the queue. Once started is closed the caller
	// waits for this response, so the check and Perform agree on what the caller sees.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.bank)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	started  chan struct{}
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
