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

// Package actor implements the runtime core: isolated units of state that
// communicate exclusively through typed asynchronous messages delivered to
// per-actor mailboxes, with optional supervision trees that detect and
// recover from actor failure.
//
// Every actor owns exactly one mailbox drained by exactly one goroutine, so
// message handling for a given actor is strictly sequential and follows
// enqueue order. Handles to an actor come in three flavors: a strong
// Address, a non-owning WeakAddress, and a type-erased Proxy bound to a
// single message type.
package actor

// ActorID uniquely identifies an actor. Identifiers are monotonically
// increasing and never reused within a process.
type ActorID uint64

// Unit is the result type of messages that carry no reply value.
type Unit struct{}

// Actor is the contract every actor implementation must satisfy.
type Actor interface {
	// PreStart is called once before the actor enters its mailbox loop.
	// A failure here aborts the spawn: the error is surfaced synchronously
	// to the spawning caller and the mailbox is never entered.
	PreStart(ctx *Context) error

	// PostStop is called once after the mailbox loop has ended and before
	// the exit signal fires. It is best-effort: a returned error is logged
	// and never propagated.
	PostStop(ctx *Context) error
}

// Restartable must be implemented by actors spawned under supervision.
type Restartable interface {
	// PreRestart is called once per restart, before the mailbox resumes.
	// It receives the actor's own weak address so the implementation can,
	// for instance, reset internal state.
	PreRestart(self *WeakAddress)
}

// Message is implemented by any message that actor type A can handle,
// producing a reply of type R. The Handle implementation is the glue that
// routes the message to the matching handler on the concrete actor; it runs
// inside the target actor's mailbox loop, never concurrently with other
// messages to the same actor.
type Message[A Actor, R any] interface {
	Handle(self A, ctx *Context) (R, error)
}
