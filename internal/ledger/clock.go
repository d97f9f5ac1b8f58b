package ledger

import (
	"sync/atomic"
	"time"
)

// Clock supplies the current instant to accounts and their transactions.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// IDGenerator hands out account ids. Implementations must never return the same id twice.
type IDGenerator interface {
	NextID() int64
}

// Sequence is an IDGenerator counting up from 1. Safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}
