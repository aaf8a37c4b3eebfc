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

// event is a unit of mailbox work. Events are constructed by address
// operations and consumed exactly once by the owning actor's runner.
type event interface{}

// execFn is a one-shot unit of work closing over a concrete message value.
// At execution time it attempts to recover the actor's concrete type from
// its type-erased storage and invoke the matching handler.
type execFn func(instance any, ctx *Context) error

// stopEvent ends the mailbox loop, recording the given reason as the
// actor's exit result.
type stopEvent struct {
	reason error
}

// execEvent carries a dispatch closure to run against the owned actor.
// abandon fails the pending reply; it is invoked instead of fn for events
// still queued when the loop ends, so no caller awaits a reply that can
// never come.
type execEvent struct {
	fn      execFn
	abandon func(err error)
}

// restartEvent re-runs the restart hook and resumes the loop. It is only
// ever injected by the supervision protocol; reaching an unsupervised
// actor is a misuse that stops that actor with ErrNotSupervised.
type restartEvent struct{}

// addSupervisorEvent registers a supervisor's fault capability with the
// actor. Registration happens inside the mailbox loop so it never races
// with in-flight message handling.
type addSupervisorEvent struct {
	proxy *Proxy[ChildFault, Directive]
}
