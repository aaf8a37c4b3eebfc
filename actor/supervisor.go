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
	gerrors "github.com/troupe-go/troupe/errors"
)

// Strategy selects how a Supervisor reacts when one of its children faults.
type Strategy int

const (
	// OneForOneStrategy restarts only the faulted child.
	OneForOneStrategy Strategy = iota

	// OneForAllStrategy restarts every tracked child whenever any one of
	// them faults.
	OneForAllStrategy
)

// String returns the string representation of the strategy
func (s Strategy) String() string {
	switch s {
	case OneForOneStrategy:
		return "OneForOne"
	case OneForAllStrategy:
		return "OneForAll"
	default:
		return ""
	}
}

// Supervisor is an actor that watches a set of child actors and decides,
// per fault, whether each child restarts or stops. It is itself an ordinary
// actor: it can be named, stopped, and even placed under a supervisor of
// its own to form a supervision chain.
//
// All of its state is touched only from message handlers, so no locking is
// needed.
type Supervisor struct {
	strategy    Strategy
	maxRestarts int

	// children is the sole record of membership; restarts carries the
	// per-child budget for ids present in it.
	children map[ActorID]*WeakAddress
	restarts map[ActorID]int

	faultProxy *Proxy[ChildFault, Directive]
}

// enforce compilation errors
var _ Actor = (*Supervisor)(nil)

// SupervisorOption configures a Supervisor prior to spawning it.
type SupervisorOption func(*Supervisor)

// WithStrategy sets the restart strategy. The default is one-for-one.
func WithStrategy(strategy Strategy) SupervisorOption {
	return func(s *Supervisor) {
		s.strategy = strategy
	}
}

// WithMaxRestarts caps how many times a given child may be restarted.
// Once a child exceeds the cap its next fault is answered with a stop
// directive and the child is forgotten. Zero means unlimited.
func WithMaxRestarts(max int) SupervisorOption {
	return func(s *Supervisor) {
		s.maxRestarts = max
	}
}

// NewSupervisor creates a Supervisor. Spawn it like any other actor and
// attach children with SpawnSupervised or LinkToSupervisor.
func NewSupervisor(opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		strategy: OneForOneStrategy,
		children: make(map[ActorID]*WeakAddress),
		restarts: make(map[ActorID]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PreStart builds the fault capability handed to every tracked child. The
// capability holds only a weak reference back to the supervisor, so a
// stopped supervisor never keeps children answering into the void.
func (s *Supervisor) PreStart(ctx *Context) error {
	self := ctx.Self().Upgrade()
	if self == nil {
		return gerrors.ErrAddressUnavailable
	}
	s.faultProxy = NewProxy[*Supervisor, Directive, ChildFault](self)
	return nil
}

// PostStop drops all child bookkeeping.
func (s *Supervisor) PostStop(*Context) error {
	s.children = make(map[ActorID]*WeakAddress)
	s.restarts = make(map[ActorID]int)
	return nil
}

func (s *Supervisor) forget(id ActorID) {
	delete(s.children, id)
	delete(s.restarts, id)
}
