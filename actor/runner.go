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
	"runtime"
	"time"

	"github.com/flowchartsman/retry"

	gerrors "github.com/troupe-go/troupe/errors"
	"github.com/troupe-go/troupe/internal/eventstream"
	"github.com/troupe-go/troupe/internal/registry"
	"github.com/troupe-go/troupe/log"
)

// identities is the process-wide identity registry: identifier allocation,
// display names and the abort handles backing ForceStop. It lives for the
// process lifetime; per-actor entries are removed at stop.
var identities = registry.New()

// lifecycle is the process-wide broker carrying actor lifecycle
// notifications. Diagnostic only.
var lifecycle = eventstream.New()

// runner owns exactly one actor instance and one mailbox receiver and runs
// a single sequential loop for the actor's entire life. There is at most
// one running loop per actor.
type runner struct {
	actor    Actor
	actorCtx *Context
	mb       *mailbox
	exit     *exitSignal
	addr     *Address
	cancel   context.CancelFunc
	logger   log.Logger
}

// Spawn starts an unsupervised actor and returns its strong address once
// the startup hook has completed successfully. A PreStart failure aborts
// the spawn: the mailbox loop is never entered.
func Spawn(ctx context.Context, a Actor, opts ...SpawnOption) (*Address, error) {
	r, err := newRunner(ctx, a, opts...)
	if err != nil {
		return nil, err
	}
	r.start(r.run)
	return r.addr, nil
}

// SpawnSupervised starts a supervised actor and registers it with the given
// supervisor before returning. The actor must implement Restartable. A
// failed registration stops the freshly started actor and fails the spawn.
func SpawnSupervised(ctx context.Context, a Actor, supervisor *Address, opts ...SpawnOption) (*Address, error) {
	if _, ok := a.(Restartable); !ok {
		return nil, gerrors.ErrNotRestartable
	}
	r, err := newRunner(ctx, a, opts...)
	if err != nil {
		return nil, err
	}
	r.start(r.supervise)
	if _, err := Ask[*Supervisor, Unit](ctx, supervisor, Supervise{Child: r.addr}); err != nil {
		r.addr.Stop(nil)
		return nil, err
	}
	return r.addr, nil
}

// newRunner allocates the actor's identity, mailbox, exit signal and
// context, sets the weak self-address exactly once, and runs PreStart.
func newRunner(ctx context.Context, a Actor, opts ...SpawnOption) (*runner, error) {
	cfg := newSpawnConfig(opts...)
	id := ActorID(identities.NextID())
	if cfg.name != "" {
		identities.SetName(uint64(id), cfg.name)
	}

	mb := newMailbox()
	exit := newExitSignal()
	// The runner context is detached from the spawn context: the actor
	// outlives the call that spawned it. Cancellation is the ForceStop path.
	runCtx, cancel := context.WithCancel(context.Background())

	actorCtx := &Context{
		id:     id,
		rctx:   runCtx,
		logger: cfg.logger,
	}
	addr := &Address{id: id, mb: mb, exit: exit}
	actorCtx.self = addr.Downgrade()

	if err := runPreStart(ctx, a, actorCtx, cfg); err != nil {
		cancel()
		identities.Remove(uint64(id))
		return nil, gerrors.NewErrInitFailure(err)
	}

	return &runner{
		actor:    a,
		actorCtx: actorCtx,
		mb:       mb,
		exit:     exit,
		addr:     addr,
		cancel:   cancel,
		logger:   cfg.logger,
	}, nil
}

// runPreStart invokes the startup hook, retrying per the spawn config.
func runPreStart(ctx context.Context, a Actor, actorCtx *Context, cfg *spawnConfig) error {
	if cfg.initMaxRetries <= 1 {
		return a.PreStart(actorCtx)
	}
	retrier := retry.NewRetrier(cfg.initMaxRetries, time.Millisecond, cfg.initTimeout)
	return retrier.RunContext(ctx, func(context.Context) error {
		return a.PreStart(actorCtx)
	})
}

// start registers the abort handle and launches the processing loop.
func (r *runner) start(loop func()) {
	identities.RegisterAbort(uint64(r.actorCtx.id), r.cancel)
	lifecycle.Publish(lifecycleTopic, ActorStarted{ID: r.actorCtx.id})
	r.logger.Debugf("actor %s started", r.actorCtx.NameOrID())
	go loop()
}

// run is the unsupervised processing loop.
func (r *runner) run() {
	var reason error
loop:
	for {
		ev, ok := r.mb.next(r.actorCtx.rctx)
		if !ok {
			r.aborted()
			return
		}
		switch e := ev.(type) {
		case stopEvent:
			reason = e.reason
			break loop
		case execEvent:
			if err := e.fn(r.actor, r.actorCtx); err != nil {
				reason = err
				break loop
			}
		default:
			// supervision protocol events are a misuse here, fatal for the actor
			r.logger.Errorf("actor %s received %T but is not supervised", r.actorCtx.NameOrID(), ev)
			reason = gerrors.ErrNotSupervised
			break loop
		}
	}
	r.shutdown(reason)
}

// supervise is the supervised processing loop: the same event loop as run,
// wrapped in an outer loop that escalates faults to the registered
// supervisors and re-enters on a restart decision. Events queued before a
// fault remain queued across the restart.
func (r *runner) supervise() {
	restartable := r.actor.(Restartable)
	var reason error
outer:
	for {
		var fault error
	inner:
		for {
			ev, ok := r.mb.next(r.actorCtx.rctx)
			if !ok {
				r.aborted()
				return
			}
			switch e := ev.(type) {
			case stopEvent:
				reason = e.reason
				break outer
			case execEvent:
				if err := e.fn(r.actor, r.actorCtx); err != nil {
					fault = err
					break inner
				}
			case restartEvent:
				r.restart(restartable)
			case addSupervisorEvent:
				r.actorCtx.supervisors = append(r.actorCtx.supervisors, e.proxy)
			}
		}

		r.logger.Warnf("actor %s faulted: %v", r.actorCtx.NameOrID(), fault)
		if r.actorCtx.escalate(fault) == RestartDirective {
			r.restart(restartable)
			continue outer
		}
		reason = fault
		break outer
	}
	r.shutdown(reason)
}

// restart runs the restart hook and announces the restart.
func (r *runner) restart(restartable Restartable) {
	restartable.PreRestart(r.actorCtx.self)
	lifecycle.Publish(lifecycleTopic, ActorRestarted{ID: r.actorCtx.id})
	r.logger.Debugf("actor %s restarted", r.actorCtx.NameOrID())
}

// shutdown runs the best-effort shutdown hook, then finishes the actor.
func (r *runner) shutdown(reason error) {
	if err := r.actor.PostStop(r.actorCtx); err != nil {
		r.logger.Errorf("actor %s postStop failed: %v", r.actorCtx.NameOrID(), err)
	}
	r.finish(reason)
}

// aborted is the ForceStop path: the shutdown hook is bypassed and queued
// events are dropped.
func (r *runner) aborted() {
	r.logger.Warnf("actor %s force-stopped", r.actorCtx.NameOrID())
	r.finish(gerrors.ErrForcedStop)
}

// finish closes the mailbox, removes the actor's registry entries and fires
// the exit signal exactly once with the recorded exit result. The stop
// notification is published before the signal fires, so anyone woken by
// AwaitStop already finds it on the stream.
func (r *runner) finish(reason error) {
	name := r.actorCtx.NameOrID()
	r.mb.close()
	r.drain()
	// a producer that loaded the closed flag just before close may still
	// land an event behind the first pass
	runtime.Gosched()
	r.drain()
	identities.Remove(uint64(r.actorCtx.id))
	lifecycle.Publish(lifecycleTopic, ActorStopped{ID: r.actorCtx.id, Reason: reason})
	r.exit.fire(reason)
	r.logger.Debugf("actor %s stopped", name)
	r.cancel()
}

// drain fails the reply of every event still queued when the loop ended.
// Callers awaiting those replies fail fast instead of hanging on a reply
// that can never come.
func (r *runner) drain() {
	for {
		ev, ok := r.mb.events.Pop()
		if !ok {
			return
		}
		if e, ok := ev.(execEvent); ok {
			e.abandon(gerrors.ErrAddressUnavailable)
		}
	}
}
