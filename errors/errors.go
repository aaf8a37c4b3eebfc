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

// Package errors defines the error taxonomy of the runtime.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInitFailure is returned when the actor's PreStart hook fails during
	// initialization. The actor never enters its mailbox loop.
	ErrInitFailure = errors.New("preStart failed")

	// ErrAddressUnavailable indicates that the target actor's mailbox has
	// closed. It is reported at the point of send or upgrade and never
	// results in a hang.
	ErrAddressUnavailable = errors.New("actor address is unavailable")

	// ErrUnhandled is returned when a message is routed to an actor that does
	// not implement a handler for its type. This signals a programming
	// defect, not a transient runtime condition.
	ErrUnhandled = errors.New("unhandled message")

	// ErrForcedStop is the exit reason recorded when an actor's background
	// task is aborted through ForceStop, bypassing its shutdown hook.
	ErrForcedStop = errors.New("actor was force-stopped")

	// ErrNotRestartable is returned when a supervised spawn is attempted with
	// an actor that does not implement the Restartable interface.
	ErrNotRestartable = errors.New("actor does not implement Restartable")

	// ErrNotSupervised is the exit reason recorded when a supervision
	// protocol event reaches an actor that was not spawned under a
	// supervisor. This signals a programming defect, not a transient
	// runtime condition.
	ErrNotSupervised = errors.New("supervision event sent to an unsupervised actor")
)

// NewErrInitFailure wraps the PreStart error into an ErrInitFailure.
func NewErrInitFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrInitFailure, err)
}

// NewErrUnhandled builds an ErrUnhandled naming the offending actor and
// message types.
func NewErrUnhandled(actorType, msgType string) error {
	return fmt.Errorf("%w: actor type %s does not implement a handler for message type %s", ErrUnhandled, actorType, msgType)
}
