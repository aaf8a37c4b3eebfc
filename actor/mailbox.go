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

package actor

import (
	"context"

	"go.uber.org/atomic"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/internal/queue"
)

// mailbox is the unbounded multi-producer single-consumer event queue
// feeding one actor's processing loop. Senders cannot be backpressured: a
// slow actor grows its queue without bound, an accepted trade-off of the
// runtime.
//
// The mailbox closes when its actor's loop ends. The same mailbox instance
// serves the actor across supervised restarts, so events queued before a
// fault are retained and processed after the restart.
type mailbox struct {
	events *queue.MpscQueue[event]
	wakeup chan struct{}
	closed *atomic.Bool
}

func newMailbox() *mailbox {
	return &mailbox{
		events: queue.NewMpscQueue[event](),
		wakeup: make(chan struct{}, 1),
		closed: atomic.NewBool(false),
	}
}

// push enqueues an event. It fails with ErrAddressUnavailable once the
// mailbox has closed and never blocks.
func (m *mailbox) push(e event) error {
	if m.closed.Load() {
		return gerrors.ErrAddressUnavailable
	}
	m.events.Push(e)
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
	return nil
}

// next blocks until an event is available or the given context is canceled.
// It returns false only on cancellation, the forced-termination path.
// Must be called by the single consumer goroutine.
func (m *mailbox) next(ctx context.Context) (event, bool) {
	for {
		if e, ok := m.events.Pop(); ok {
			return e, true
		}
		select {
		case <-m.wakeup:
		case <-ctx.Done():
			return nil, false
		}
	}
}

// close marks the mailbox as closed. Subsequent pushes and upgrades fail.
func (m *mailbox) close() {
	m.closed.Store(true)
}
