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

package queue

import (
	"sync"
	"sync/atomic"
)

// node is a single entry in the MPSC queue.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// MpscQueue is an unbounded Multi-Producer-Single-Consumer queue.
//
// Concurrency model:
//   - many goroutines may call Push concurrently,
//     but exactly one goroutine must call Pop.
//
// Characteristics:
//   - FIFO ordering across all producers.
//   - Lock-free operations via atomic pointer primitives.
//   - Push never blocks and never fails; the queue grows without bound.
//
// reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type MpscQueue[T any] struct {
	head   atomic.Pointer[node[T]] // consumer only
	tail   atomic.Pointer[node[T]] // producers only
	length int64
	pool   sync.Pool
}

// NewMpscQueue creates an instance of MpscQueue.
// The queue starts with a dummy node so that producers can append by
// swapping tail and linking through the previous node.
func NewMpscQueue[T any]() *MpscQueue[T] {
	q := &MpscQueue[T]{
		pool: sync.Pool{New: func() any { return new(node[T]) }},
	}
	dummy := q.pool.Get().(*node[T])
	q.head.Store(dummy)
	q.tail.Store(dummy)
	return q
}

// Push places the given value at the back of the queue.
// Safe for concurrent calls by multiple producers.
func (q *MpscQueue[T]) Push(value T) {
	n := q.pool.Get().(*node[T])
	n.data = value
	n.next.Store(nil)

	prev := q.tail.Swap(n)
	prev.next.Store(n)
	atomic.AddInt64(&q.length, 1)
}

// Pop removes and returns the value at the front of the queue.
// Returns false when the queue is empty.
// Must be called by a single consumer goroutine.
func (q *MpscQueue[T]) Pop() (T, bool) {
	var zero T
	head := q.head.Load()
	next := head.next.Load()
	if next == nil {
		return zero, false
	}

	q.head.Store(next)
	value := next.data
	next.data = zero
	atomic.AddInt64(&q.length, -1)

	head.next.Store(nil)
	q.pool.Put(head)
	return value, true
}

// Len returns a best-effort snapshot of the number of queued values.
func (q *MpscQueue[T]) Len() int64 {
	return atomic.LoadInt64(&q.length)
}

// IsEmpty returns true when the queue has no pending values.
// Must be called from the single consumer goroutine.
func (q *MpscQueue[T]) IsEmpty() bool {
	return q.head.Load().next.Load() == nil
}
