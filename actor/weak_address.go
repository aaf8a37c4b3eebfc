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

import "fmt"

// WeakAddress is a non-owning handle to an actor. It never keeps the
// mailbox alive and never prevents shutdown: it is the handle of choice for
// back-references (a supervisor's view of a child, an actor's view of
// itself) that would otherwise form ownership cycles blocking teardown.
type WeakAddress struct {
	id   ActorID
	mb   *mailbox
	exit *exitSignal
}

// ID returns the target actor's identifier.
func (x *WeakAddress) ID() ActorID {
	return x.id
}

// Name returns the display name recorded for the actor, if any.
func (x *WeakAddress) Name() (string, bool) {
	return identities.Name(uint64(x.id))
}

// String renders the weak address as "<name:id>" or "<anonymous actor:id>".
func (x *WeakAddress) String() string {
	if name, ok := x.Name(); ok {
		return fmt.Sprintf("<%s:%d>", name, x.id)
	}
	return fmt.Sprintf("<anonymous actor:%d>", x.id)
}

// Upgrade attempts to produce a strong Address. It yields nil once the
// actor's mailbox has closed.
func (x *WeakAddress) Upgrade() *Address {
	if x.mb.closed.Load() {
		return nil
	}
	return &Address{
		id:   x.id,
		mb:   x.mb,
		exit: x.exit,
	}
}

// restart injects a restart event. Reserved for the supervision protocol:
// it is how a one-for-all supervisor restarts the siblings of a faulted
// child.
func (x *WeakAddress) restart() error {
	return x.mb.push(restartEvent{})
}
