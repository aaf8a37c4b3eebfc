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

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/future"
)

// Proxy is a type-erased capability to send one message type to one actor.
// It carries only the actor identifier and a weak sending closure, so it
// can be stored indefinitely by unrelated components without naming the
// actor's concrete type and without pinning the actor's lifetime. This is
// how a supervisor holds its children, and children their supervisors,
// without ownership cycles that would prevent teardown.
type Proxy[M, R any] struct {
	id   ActorID
	send func(msg M) (*future.Future[R], error)
}

// NewProxy derives from the given address a proxy bound to message type M.
// The concrete actor type A is erased: only the send closure retains it.
func NewProxy[A Actor, R any, M Message[A, R]](addr *Address) *Proxy[M, R] {
	weak := addr.Downgrade()
	return &Proxy[M, R]{
		id: addr.ID(),
		send: func(msg M) (*future.Future[R], error) {
			target := weak.Upgrade()
			if target == nil {
				return nil, gerrors.ErrAddressUnavailable
			}
			return AskAsync[A, R](target, msg)
		},
	}
}

// ID returns the target actor's identifier.
func (p *Proxy[M, R]) ID() ActorID {
	return p.id
}

// Call sends the message and awaits the reply. Once the target actor is
// gone the call fails fast with ErrAddressUnavailable rather than hanging.
func (p *Proxy[M, R]) Call(ctx context.Context, msg M) (R, error) {
	reply, err := p.send(msg)
	if err != nil {
		var zero R
		return zero, err
	}
	return reply.Await(ctx)
}

// CallAsync sends the message and returns the reply future immediately.
func (p *Proxy[M, R]) CallAsync(msg M) (*future.Future[R], error) {
	return p.send(msg)
}
