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
	"fmt"
	"time"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/future"
)

// newExecEvent builds the one-shot dispatch closure for a message send. The
// closure recovers the actor's concrete type A from its type-erased storage;
// a failed recovery is a programming error reported through the same
// failure channel as a handler failure, naming both offending types.
func newExecEvent[A Actor, R any, M Message[A, R]](msg M, reply *future.Future[R]) execEvent {
	return execEvent{
		fn: func(instance any, ctx *Context) error {
			target, ok := instance.(A)
			if !ok {
				err := gerrors.NewErrUnhandled(fmt.Sprintf("%T", instance), fmt.Sprintf("%T", msg))
				reply.Fail(err)
				return err
			}
			result, err := msg.Handle(target, ctx)
			if err != nil {
				reply.Fail(err)
				return err
			}
			// If the reply peer is gone, the value is silently dropped:
			// there is no one to report to.
			reply.Complete(result)
			return nil
		},
		abandon: func(err error) {
			reply.Fail(err)
		},
	}
}

// Ask enqueues the message and awaits the reply. It fails when the actor's
// processing loop has already exited, when the handler fails, or when ctx
// is canceled first. The caller states the concrete actor type A and the
// reply type R; the message type is inferred:
//
//	reply, err := actor.Ask[*Human, actor.Unit](ctx, addr, Eat{Food: apple})
func Ask[A Actor, R any, M Message[A, R]](ctx context.Context, to *Address, msg M) (R, error) {
	reply, err := AskAsync[A, R](to, msg)
	if err != nil {
		var zero R
		return zero, err
	}
	return reply.Await(ctx)
}

// AskAsync enqueues the message and returns the reply future immediately,
// letting the caller decide when, or whether, to await it.
func AskAsync[A Actor, R any, M Message[A, R]](to *Address, msg M) (*future.Future[R], error) {
	reply := future.New[R]()
	if err := to.mb.push(newExecEvent[A](msg, reply)); err != nil {
		return nil, err
	}
	return reply, nil
}

// AskTimeout races the reply against a timer. A false second return value
// means the timer won: no value yet, distinctly from a handler failure.
// The in-flight handler is not canceled; it runs to completion inside the
// actor and its result is simply discarded.
func AskTimeout[A Actor, R any, M Message[A, R]](to *Address, msg M, timeout time.Duration) (R, bool, error) {
	reply, err := AskAsync[A, R](to, msg)
	if err != nil {
		var zero R
		return zero, true, err
	}
	return reply.AwaitTimeout(timeout)
}
