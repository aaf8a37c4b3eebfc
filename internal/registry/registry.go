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

// Package registry holds the process-wide actor identity state: the identifier
// counter, the optional display names and the abort handles used for forced
// termination. All mutations are serialized behind the registry maps; reads
// are safe from any goroutine.
package registry

import (
	"context"

	"go.uber.org/atomic"

	"github.com/troupe-go/troupe/internal/xsync"
)

// Registry allocates actor identifiers and tracks per-actor bookkeeping.
type Registry struct {
	counter *atomic.Uint64
	names   *xsync.Map[uint64, string]
	aborts  *xsync.Map[uint64, context.CancelFunc]
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		counter: atomic.NewUint64(0),
		names:   xsync.NewMap[uint64, string](),
		aborts:  xsync.NewMap[uint64, context.CancelFunc](),
	}
}

// NextID issues a fresh, strictly increasing identifier.
// Identifiers are never reused for the process lifetime.
func (r *Registry) NextID() uint64 {
	return r.counter.Inc()
}

// SetName records a display name for the given identifier.
func (r *Registry) SetName(id uint64, name string) {
	r.names.Set(id, name)
}

// Name retrieves the display name recorded for the given identifier.
func (r *Registry) Name(id uint64) (string, bool) {
	name, ok := r.names.Get(id)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// RegisterAbort stores the handle used to force-terminate the actor's
// background task.
func (r *Registry) RegisterAbort(id uint64, cancel context.CancelFunc) {
	r.aborts.Set(id, cancel)
}

// Abort force-terminates the actor owning the given identifier and removes
// its abort handle. It returns false when the actor is already gone, which
// is an expected race rather than an error.
func (r *Registry) Abort(id uint64) bool {
	cancel, ok := r.aborts.Get(id)
	if !ok {
		return false
	}
	r.aborts.Delete(id)
	cancel()
	return true
}

// Remove drops every entry recorded for the given identifier.
func (r *Registry) Remove(id uint64) {
	r.names.Delete(id)
	r.aborts.Delete(id)
}
