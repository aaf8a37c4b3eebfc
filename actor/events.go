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
	"github.com/troupe-go/troupe/internal/eventstream"
)

const lifecycleTopic = "troupe.lifecycle"

// ActorStarted is published after an actor's startup hook succeeded and
// its loop has been scheduled.
type ActorStarted struct {
	ID ActorID
}

// ActorRestarted is published each time a supervised actor completes a
// restart.
type ActorRestarted struct {
	ID ActorID
}

// ActorStopped is published once an actor's loop has fully terminated.
// Reason carries the actor's exit result, nil for a clean stop.
type ActorStopped struct {
	ID     ActorID
	Reason error
}

// Lifecycle is a subscription to the runtime's lifecycle notifications.
// Events observed before the subscription existed are not replayed.
type Lifecycle struct {
	subscriber eventstream.Subscriber
}

// SubscribeLifecycle starts observing actor lifecycle events. The caller
// must Close the returned subscription when done with it.
func SubscribeLifecycle() *Lifecycle {
	subscriber := lifecycle.AddSubscriber()
	lifecycle.Subscribe(subscriber, lifecycleTopic)
	return &Lifecycle{subscriber: subscriber}
}

// Events drains the notifications buffered since the previous call. Each
// element is one of ActorStarted, ActorRestarted or ActorStopped.
func (l *Lifecycle) Events() []any {
	var events []any
	for message := range l.subscriber.Iterator() {
		events = append(events, message.Payload())
	}
	return events
}

// Close tears down the subscription.
func (l *Lifecycle) Close() {
	lifecycle.Unsubscribe(l.subscriber, lifecycleTopic)
	lifecycle.RemoveSubscriber(l.subscriber)
}
