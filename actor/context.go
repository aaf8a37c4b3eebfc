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

	"github.com/troupe-go/troupe/log"
)

// Context is the per-actor runtime state handed to lifecycle hooks and
// message handlers. It is owned by the actor's runner goroutine.
type Context struct {
	id   ActorID
	self *WeakAddress
	// supervisors are appended in registration order, only ever from the
	// runner goroutine processing AddSupervisor events, so no lock guards
	// the slice.
	supervisors []*Proxy[ChildFault, Directive]
	rctx        context.Context
	logger      log.Logger
}

// ID returns the actor's identifier.
func (x *Context) ID() ActorID {
	return x.id
}

// Self returns the actor's own weak address. It is set exactly once before
// PreStart runs; any hook or handler may rely on it from that point on.
func (x *Context) Self() *WeakAddress {
	return x.self
}

// Logger returns the logger configured at spawn time.
func (x *Context) Logger() log.Logger {
	return x.logger
}

// Context returns the runner's context. It is canceled when the actor is
// force-stopped, so long-running handlers should honor it.
func (x *Context) Context() context.Context {
	return x.rctx
}

// NameOrID renders the actor as "<name:id>", or "<anonymous actor:id>" when
// no name was recorded.
func (x *Context) NameOrID() string {
	if name, ok := identities.Name(uint64(x.id)); ok {
		return fmt.Sprintf("<%s:%d>", name, x.id)
	}
	return fmt.Sprintf("<anonymous actor:%d>", x.id)
}

// escalate notifies every registered supervisor of the fault, in
// registration order, and returns the first reachable supervisor's
// directive. Unreachable supervisors are skipped; when no supervisor can
// decide, the actor terminates.
func (x *Context) escalate(fault error) Directive {
	for _, sup := range x.supervisors {
		directive, err := sup.Call(x.rctx, ChildFault{ID: x.id, Reason: fault})
		if err != nil {
			x.logger.Warnf("actor %s: supervisor %d unreachable: %v", x.NameOrID(), sup.ID(), err)
			continue
		}
		return directive
	}
	return StopDirective
}
