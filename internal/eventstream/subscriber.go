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

package eventstream

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/troupe-go/troupe/internal/queue"
)

// Subscriber defines the Subscriber Interface
type Subscriber interface {
	ID() string
	Active() bool
	Topics() []string
	Iterator() chan *Message
	Shutdown()
	signal(message *Message)
	subscribe(topic string)
	unsubscribe(topic string)
}

// subscriber is the broker-managed Subscriber implementation.
type subscriber struct {
	id       string
	sem      sync.Mutex
	messages *queue.MpscQueue[*Message]
	topics   mapset.Set[string]
	active   *atomic.Bool
}

var _ Subscriber = (*subscriber)(nil)

// newSubscriber creates an instance of a stream consumer.
func newSubscriber() *subscriber {
	return &subscriber{
		id:       uuid.NewString(),
		messages: queue.NewMpscQueue[*Message](),
		topics:   mapset.NewSet[string](),
		active:   atomic.NewBool(true),
	}
}

// ID returns the subscriber id
func (x *subscriber) ID() string {
	return x.id
}

// Active checks whether the subscriber is active
func (x *subscriber) Active() bool {
	return x.active.Load()
}

// Topics returns the list of topics the subscriber has subscribed to
func (x *subscriber) Topics() []string {
	return x.topics.ToSlice()
}

// Shutdown deactivates the subscriber
func (x *subscriber) Shutdown() {
	x.active.Store(false)
}

// Iterator drains the pending messages into a buffered channel. The drain
// is bounded to the queue length observed at entry so that a concurrent
// signal can never outgrow the channel buffer and block the caller.
func (x *subscriber) Iterator() chan *Message {
	x.sem.Lock()
	defer x.sem.Unlock()
	out := make(chan *Message, x.messages.Len())
	for len(out) < cap(out) {
		msg, ok := x.messages.Pop()
		if !ok {
			break
		}
		out <- msg
	}
	close(out)
	return out
}

// signal enqueues the given message for delivery.
func (x *subscriber) signal(msg *Message) {
	if x.active.Load() {
		x.messages.Push(msg)
	}
}

func (x *subscriber) subscribe(topic string) {
	x.topics.Add(topic)
}

func (x *subscriber) unsubscribe(topic string) {
	x.topics.Remove(topic)
}
