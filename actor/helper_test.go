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
	"errors"
	"testing"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// counter is a plain, non-restartable actor accumulating a running total.
type counter struct {
	total   *atomic.Int32
	stopped *atomic.Bool
}

var _ Actor = (*counter)(nil)

func newCounter() *counter {
	return &counter{
		total:   atomic.NewInt32(0),
		stopped: atomic.NewBool(false),
	}
}

func (c *counter) PreStart(*Context) error {
	return nil
}

func (c *counter) PostStop(*Context) error {
	c.stopped.Store(true)
	return nil
}

// add increments the counter and replies with the running total.
type add struct {
	n int
}

func (m add) Handle(self *counter, _ *Context) (int, error) {
	return int(self.total.Add(int32(m.n))), nil
}

// sleepFor parks the handler until the duration elapses or the actor is
// force-stopped.
type sleepFor struct {
	d time.Duration
}

func (m sleepFor) Handle(_ *counter, ctx *Context) (Unit, error) {
	timer := time.NewTimer(m.d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Context().Done():
	}
	return Unit{}, nil
}

// fail makes the handler report the carried error.
type fail struct {
	err error
}

func (m fail) Handle(_ *counter, _ *Context) (Unit, error) {
	return Unit{}, m.err
}

// patient is a restartable actor whose meal count resets on restart.
type patient struct {
	meals    *atomic.Int32
	restarts *atomic.Int32
}

var _ Actor = (*patient)(nil)
var _ Restartable = (*patient)(nil)

func newPatient() *patient {
	return &patient{
		meals:    atomic.NewInt32(0),
		restarts: atomic.NewInt32(0),
	}
}

func (p *patient) PreStart(*Context) error {
	return nil
}

func (p *patient) PreRestart(*WeakAddress) {
	p.meals.Store(0)
	p.restarts.Inc()
}

func (p *patient) PostStop(*Context) error {
	return nil
}

// eat increments the meal count and replies with it; poisoned food fails
// the handler.
type eat struct {
	poisoned bool
}

func (m eat) Handle(self *patient, _ *Context) (int, error) {
	if m.poisoned {
		return 0, errors.New("food poisoning")
	}
	return int(self.meals.Inc()), nil
}

// flakyInit is an actor whose startup hook fails until a set attempt.
type flakyInit struct {
	attempts  *atomic.Int32
	succeedOn int32
}

var _ Actor = (*flakyInit)(nil)

func newFlakyInit(succeedOn int32) *flakyInit {
	return &flakyInit{
		attempts:  atomic.NewInt32(0),
		succeedOn: succeedOn,
	}
}

func (f *flakyInit) PreStart(*Context) error {
	if f.attempts.Inc() < f.succeedOn {
		return errors.New("not ready yet")
	}
	return nil
}

func (f *flakyInit) PostStop(*Context) error {
	return nil
}
