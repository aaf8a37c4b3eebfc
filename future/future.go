/*
 * MIT License
 *
 * Copyright (c) 2023-2026 Troupe Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package future provides a single-assignment reply container used as the
// reply channel between a message sender and the actor processing loop.
package future

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point, or an error if that value could not
// be made available.
//
// A Future is completed at most once. Completing an already-completed
// Future is a no-op, so a reply whose peer has given up is silently
// dropped rather than reported.
type Future[R any] struct {
	acceptOnce   sync.Once
	completeOnce sync.Once
	done         chan any
	value        R
	err          error
	interrupted  bool
}

// completion wraps a successful value on the done channel, keeping it
// distinct from failures even when R is itself an error type.
type completion[R any] struct {
	value R
}

// New returns a new pending Future.
func New[R any]() *Future[R] {
	return &Future[R]{
		done: make(chan any, 1),
	}
}

// Complete completes the Future with a value. Only the first completion,
// successful or failed, is retained.
func (x *Future[R]) Complete(value R) {
	x.completeOnce.Do(func() {
		x.done <- completion[R]{value: value}
	})
}

// Fail fails the Future with an error. Only the first completion,
// successful or failed, is retained.
func (x *Future[R]) Fail(err error) {
	x.completeOnce.Do(func() {
		x.done <- err
	})
}

// Await blocks until the Future is completed or the context is canceled and
// returns either a result or an error. The first outcome observed is final:
// a canceled Await makes the Future yield the cancellation error to every
// subsequent Await.
func (x *Future[R]) Await(ctx context.Context) (R, error) {
	x.wait(ctx)
	return x.value, x.err
}

// AwaitTimeout races the Future against a timer. The second return value is
// false only when the timer fired first; a handler failure is returned as an
// error with the second return value set to true, even when that failure
// wraps a deadline error of its own. Timing out does not cancel the work
// feeding the Future.
func (x *Future[R]) AwaitTimeout(timeout time.Duration) (R, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	value, err := x.Await(ctx)
	if x.interrupted && errors.Is(err, context.DeadlineExceeded) {
		var zero R
		return zero, false, nil
	}
	return value, true, err
}

// wait blocks once, until the Future result is available or until
// the context is canceled.
func (x *Future[R]) wait(ctx context.Context) {
	x.acceptOnce.Do(func() {
		select {
		case result := <-x.done:
			x.setResult(result)
		case <-ctx.Done():
			x.interrupted = true
			x.setResult(ctx.Err())
		}
	})
}

// setResult assigns the final outcome to the Future instance.
func (x *Future[R]) setResult(result any) {
	switch value := result.(type) {
	case completion[R]:
		x.value = value.value
	case error:
		x.err = value
	}
}
