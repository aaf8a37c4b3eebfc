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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/log"
)

func TestProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("With round trip", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		// the proxy erases the counter type: callers see only add and int
		proxy := NewProxy[*counter, int, add](addr)
		assert.Equal(t, addr.ID(), proxy.ID())

		total, err := proxy.Call(ctx, add{n: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, total)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With async call", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		proxy := NewProxy[*counter, int, add](addr)
		reply, err := proxy.CallAsync(add{n: 2})
		require.NoError(t, err)
		total, err := reply.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With stopped target", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		proxy := NewProxy[*counter, int, add](addr)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))

		// the proxy holds the actor only weakly: it fails fast, never hangs
		_, err = proxy.Call(ctx, add{n: 1})
		assert.ErrorIs(t, err, gerrors.ErrAddressUnavailable)

		_, err = proxy.CallAsync(add{n: 1})
		assert.ErrorIs(t, err, gerrors.ErrAddressUnavailable)
	})
}
