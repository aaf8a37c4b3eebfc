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

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

func TestRegistry(t *testing.T) {
	t.Run("With identifier allocation", func(t *testing.T) {
		r := New()
		first := r.NextID()
		second := r.NextID()
		assert.Greater(t, second, first)
	})

	t.Run("With concurrent identifier allocation", func(t *testing.T) {
		r := New()
		var eg errgroup.Group
		seen := make(chan uint64, 1000)
		for i := 0; i < 10; i++ {
			eg.Go(func() error {
				for j := 0; j < 100; j++ {
					seen <- r.NextID()
				}
				return nil
			})
		}
		require.NoError(t, eg.Wait())
		close(seen)

		unique := make(map[uint64]bool)
		for id := range seen {
			require.False(t, unique[id])
			unique[id] = true
		}
		assert.Len(t, unique, 1000)
	})

	t.Run("With names", func(t *testing.T) {
		r := New()
		id := r.NextID()

		_, ok := r.Name(id)
		assert.False(t, ok)

		r.SetName(id, "alice")
		name, ok := r.Name(id)
		require.True(t, ok)
		assert.Equal(t, "alice", name)

		r.Remove(id)
		_, ok = r.Name(id)
		assert.False(t, ok)
	})

	t.Run("With abort handles", func(t *testing.T) {
		r := New()
		id := r.NextID()
		fired := atomic.NewBool(false)

		r.RegisterAbort(id, func() { fired.Store(true) })
		require.True(t, r.Abort(id))
		assert.True(t, fired.Load())

		// the handle is consumed by the first abort
		assert.False(t, r.Abort(id))
	})

	t.Run("With abort of unknown identifier", func(t *testing.T) {
		r := New()
		assert.False(t, r.Abort(42))
	})
}
