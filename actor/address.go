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
)

// StopProbeWindow is the bounded wait used by Address.IsStopped. The probe
// returns true only if the exit signal has already fired or fires within
// this window.
var StopProbeWindow = 10 * time.Millisecond

// Address is the strong handle to an actor's mailbox. Copy it freely: every
// copy refers to the same mailbox and exit signal.
type Address struct {
	id   ActorID
	mb   *mailbox
	exit *exitSignal
}

// ID returns the target actor's identifier.
func (x *Address) ID() ActorID {
	return x.id
}

// Name returns the display name recorded for the actor, if any.
func (x *Address) Name() (string, bool) {
	return identities.Name(uint64(x.id))
}

// SetName records a display name for the actor. Purely cosmetic: it is used
// by diagnostics and never affects routing or identity.
func (x *Address) SetName(name string) {
	identities.SetName(uint64(x.id), name)
}

// String renders the address as "<name:id>" or "<anonymous actor:id>".
func (x *Address) String() string {
	if name, ok := x.Name(); ok {
		return fmt.Sprintf("<%s:%d>", name, x.id)
	}
	return fmt.Sprintf("<anonymous actor:%d>", x.id)
}

// Stop enqueues a stop event carrying the actor's final result. Events
// ahead of it in the mailbox are still processed.
func (x *Address) Stop(reason error) {
	_ = x.mb.push(stopEvent{reason: reason})
}

// AddSupervisor enqueues the registration of a supervisor fault capability.
// Registration happens only once the actor's loop processes the event, so
// it does not race with in-flight message handling. Only supervised actors
// may receive this event.
func (x *Address) AddSupervisor(proxy *Proxy[ChildFault, Directive]) {
	_ = x.mb.push(addSupervisorEvent{proxy: proxy})
}

// LinkToSupervisor registers this address with the given supervisor's
// Supervise capability.
func (x *Address) LinkToSupervisor(ctx context.Context, supervise *Proxy[Supervise, Unit]) error {
	_, err := supervise.Call(ctx, Supervise{Child: x})
	return err
}

// ChainLinkToSupervisor is the chainable form of LinkToSupervisor, for
// fluent construction of supervision links.
func (x *Address) ChainLinkToSupervisor(ctx context.Context, supervise *Proxy[Supervise, Unit]) (*Address, error) {
	if err := x.LinkToSupervisor(ctx, supervise); err != nil {
		return nil, err
	}
	return x, nil
}

// IsStopped is a non-blocking probe with a bounded wait window of
// StopProbeWindow. A false return is a heuristic, not a guarantee the
// actor is still running.
func (x *Address) IsStopped() bool {
	select {
	case <-x.exit.fired():
		return true
	default:
	}
	timer := time.NewTimer(StopProbeWindow)
	defer timer.Stop()
	select {
	case <-x.exit.fired():
		return true
	case <-timer.C:
		return false
	}
}

// AwaitStop suspends until the exit signal fires and returns the actor's
// recorded exit result. The signal fires exactly once; AwaitStop returns
// the same outcome no matter how many times or when it is invoked.
func (x *Address) AwaitStop(ctx context.Context) error {
	select {
	case <-x.exit.fired():
		return x.exit.reason()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ForceStop aborts the actor's background task through the identity
// registry and removes its registry entry. It bypasses the shutdown hook
// and drops queued events, so resources the actor held may leak; it is
// reserved for emergency termination. Returns false when the actor is
// already gone, an expected race rather than an error.
func (x *Address) ForceStop() bool {
	return identities.Abort(uint64(x.id))
}

// Downgrade produces a weak address that observes the actor without
// extending its lifetime.
func (x *Address) Downgrade() *WeakAddress {
	return &WeakAddress{
		id:   x.id,
		mb:   x.mb,
		exit: x.exit,
	}
}
