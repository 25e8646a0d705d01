// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeImprover is an in-memory implementation of improve.Improver for testing.
type FakeImprover struct {
	mu    sync.Mutex
	calls []string

	// Result is the improved text returned on success.
	Result string

	// Err is returned instead of Result when set (error injection).
	Err error
}

// NewFakeImprover creates a FakeImprover returning the given text.
func NewFakeImprover(result string) *FakeImprover {
	return &FakeImprover{Result: result}
}

// ImproveTask implements improve.Improver, recording the raw text.
func (f *FakeImprover) ImproveTask(ctx context.Context, raw string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, raw)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Result, nil
}

// Calls returns the raw texts passed to ImproveTask, in order.
func (f *FakeImprover) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// CallCount returns the number of ImproveTask invocations.
func (f *FakeImprover) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
