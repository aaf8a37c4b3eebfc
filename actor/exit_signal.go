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

import "sync"

// exitSignal is the fire-once broadcast indicating an actor's processing
// loop has fully ended. Every strong and weak address holder shares the
// same signal, including those created before the firing.
type exitSignal struct {
	once   sync.Once
	done   chan struct{}
	result error
}

func newExitSignal() *exitSignal {
	return &exitSignal{
		done: make(chan struct{}),
	}
}

// fire records the actor's exit result and releases every waiter.
// Only the first call has any effect.
func (s *exitSignal) fire(result error) {
	s.once.Do(func() {
		s.result = result
		close(s.done)
	})
}

// fired returns the channel closed when the signal fires.
func (s *exitSignal) fired() <-chan struct{} {
	return s.done
}

// reason reports the recorded exit result. Only valid after the signal
// has fired.
func (s *exitSignal) reason() error {
	return s.result
}
