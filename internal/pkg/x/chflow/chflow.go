// Package chflow holds channel operations that give up when their context is
// done.
package chflow

import "context"

// Receive returns the next value of ch. ok is false when ch is closed or ctx
// is done first; the value is then the zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers value on ch and reports whether it was delivered before ctx
// was done.
func Send[T any](ctx context.Context, ch chan<- T, value T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- value:
		return true
	}
}
