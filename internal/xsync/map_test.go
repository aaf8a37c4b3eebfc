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

package xsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMap(t *testing.T) {
	t.Run("With basic operations", func(t *testing.T) {
		m := NewMap[string, int]()
		assert.Zero(t, m.Len())

		m.Set("a", 1)
		m.Set("b", 2)
		require.Equal(t, 2, m.Len())

		value, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, value)

		_, ok = m.Get("missing")
		assert.False(t, ok)

		m.Delete("a")
		_, ok = m.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("With Range", func(t *testing.T) {
		m := NewMap[int, string]()
		m.Set(1, "one")
		m.Set(2, "two")

		seen := make(map[int]string)
		m.Range(func(key int, value string) {
			seen[key] = value
		})
		assert.Equal(t, map[int]string{1: "one", 2: "two"}, seen)
	})

	t.Run("With concurrent access", func(t *testing.T) {
		m := NewMap[int, int]()
		var eg errgroup.Group
		for i := 0; i < 10; i++ {
			i := i
			eg.Go(func() error {
				for j := 0; j < 100; j++ {
					m.Set(i*100+j, j)
				}
				return nil
			})
		}
		require.NoError(t, eg.Wait())
		assert.Equal(t, 1000, m.Len())
	})
}
