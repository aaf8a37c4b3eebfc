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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/future"
	"github.com/troupe-go/troupe/log"
)

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("With round trip", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		total, err := Ask[*counter, int](ctx, addr, add{n: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, total)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With strict ordering from one sender", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		replies := make([]*future.Future[int], 0, 20)
		for i := 0; i < 20; i++ {
			reply, err := AskAsync[*counter, int](addr, add{n: 1})
			require.NoError(t, err)
			replies = append(replies, reply)
		}
		// each reply carries the running total, so enqueue order is
		// processing order
		for i, reply := range replies {
			total, err := reply.Await(ctx)
			require.NoError(t, err)
			require.Equal(t, i+1, total)
		}

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With stopped actor", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))

		_, err = Ask[*counter, int](ctx, addr, add{n: 1})
		assert.ErrorIs(t, err, gerrors.ErrAddressUnavailable)
	})

	t.Run("With canceled caller context", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		// occupy the actor so the reply cannot win the race
		_, err = AskAsync[*counter, Unit](addr, sleepFor{d: 200 * time.Millisecond})
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = Ask[*counter, int](canceled, addr, add{n: 1})
		assert.ErrorIs(t, err, context.Canceled)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With reply abandoned by stop", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		// occupy the actor, then queue a stop with a message behind it
		_, err = AskAsync[*counter, Unit](addr, sleepFor{d: 100 * time.Millisecond})
		require.NoError(t, err)
		addr.Stop(nil)
		reply, err := AskAsync[*counter, int](addr, add{n: 1})
		require.NoError(t, err)

		// the message never runs; its reply fails instead of hanging
		_, err = reply.Await(ctx)
		assert.ErrorIs(t, err, gerrors.ErrAddressUnavailable)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With mismatched actor type", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		// eat targets patient, not counter
		_, err = Ask[*patient, int](ctx, addr, eat{})
		require.ErrorIs(t, err, gerrors.ErrUnhandled)
		assert.Contains(t, err.Error(), "counter")
		assert.Contains(t, err.Error(), "eat")

		// a dispatch failure is a fault like any other
		assert.ErrorIs(t, addr.AwaitStop(ctx), gerrors.ErrUnhandled)
	})

	t.Run("With sends racing stop", func(t *testing.T) {
		// every reply issued before the mailbox closes must resolve,
		// even when the send lands while the actor is tearing down
		for i := 0; i < 100; i++ {
			addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
			require.NoError(t, err)

			var eg errgroup.Group
			replies := make(chan *future.Future[int], 8*20)
			for p := 0; p < 8; p++ {
				eg.Go(func() error {
					for j := 0; j < 20; j++ {
						reply, err := AskAsync[*counter, int](addr, add{n: 1})
						if err != nil {
							return nil
						}
						replies <- reply
					}
					return nil
				})
			}
			addr.Stop(nil)
			require.NoError(t, eg.Wait())
			close(replies)
			require.NoError(t, addr.AwaitStop(ctx))

			for reply := range replies {
				_, ok, err := reply.AwaitTimeout(2 * time.Second)
				require.True(t, ok)
				if err != nil {
					require.ErrorIs(t, err, gerrors.ErrAddressUnavailable)
				}
			}
		}
	})
}

func TestAskTimeout(t *testing.T) {
	ctx := context.Background()

	t.Run("With reply in time", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		total, ok, err := AskTimeout[*counter, int](addr, add{n: 1}, time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, total)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With timer firing first", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)

		_, ok, err := AskTimeout[*counter, Unit](addr, sleepFor{d: 300 * time.Millisecond}, 50*time.Millisecond)
		require.NoError(t, err)
		assert.False(t, ok)

		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))
	})

	t.Run("With stopped actor", func(t *testing.T) {
		addr, err := Spawn(ctx, newCounter(), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		addr.Stop(nil)
		require.NoError(t, addr.AwaitStop(ctx))

		_, ok, err := AskTimeout[*counter, int](addr, add{n: 1}, time.Second)
		require.True(t, ok)
		assert.ErrorIs(t, err, gerrors.ErrAddressUnavailable)
	})
}
