package web

// limiter.go bounds the number of conversions the server runs at once.
// Requests wait up to maxWait for a slot before failing with ErrBusy, and
// WaitForDrain lets shutdown wait for running conversions.

import (
	"context"
	"errors"
	"time"
)

// ErrBusy is returned when no conversion slot frees up in time.
var ErrBusy = errors.New("too many concurrent conversions")

// ConvertLimiter is a counting semaphore over conversion slots.
type ConvertLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
}

// NewConvertLimiter allows at most maxConcurrent conversions at a time.
func NewConvertLimiter(maxConcurrent int, maxWait time.Duration) *ConvertLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &ConvertLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot. The caller must Release it.
func (l *ConvertLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrBusy
	}
}

// Release frees a slot taken by Acquire.
func (l *ConvertLimiter) Release() {
	<-l.slots
}

// Active returns the number of conversions holding a slot.
func (l *ConvertLimiter) Active() int {
	return len(l.slots)
}

// WaitForDrain blocks until no conversion holds a slot or ctx is done.
func (l *ConvertLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for l.Active() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
