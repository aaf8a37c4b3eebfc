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

// Directive is the decision a supervisor returns for a child fault.
type Directive int

const (
	// StopDirective terminates the faulted child permanently. Its shutdown
	// hook runs and the fault becomes its final exit result.
	StopDirective Directive = iota

	// RestartDirective restarts the faulted child: its restart hook runs
	// and the mailbox resumes, with queued events intact.
	RestartDirective
)

// String returns the string representation of the directive
func (d Directive) String() string {
	switch d {
	case StopDirective:
		return "Stop"
	case RestartDirective:
		return "Restart"
	default:
		return ""
	}
}

// Supervise asks a supervisor to start tracking the given child.
type Supervise struct {
	Child *Address
}

// Handle registers the child with the supervisor. The child is held weakly
// so the supervision link never prevents its teardown; the supervisor's
// fault capability is enqueued on the child and takes effect once the
// child's own loop processes it. Registering the same child twice is a
// no-op.
func (m Supervise) Handle(s *Supervisor, ctx *Context) (Unit, error) {
	if m.Child == nil {
		return Unit{}, nil
	}
	id := m.Child.ID()
	if _, ok := s.children[id]; ok {
		return Unit{}, nil
	}
	s.children[id] = m.Child.Downgrade()
	m.Child.AddSupervisor(s.faultProxy)
	ctx.Logger().Debugf("supervisor %s now tracks %s", ctx.NameOrID(), m.Child)
	return Unit{}, nil
}

// ChildFault notifies a supervisor that a tracked child's loop ended with
// a failure. It is sent by the faulted child's own escalation step.
type ChildFault struct {
	ID     ActorID
	Reason error
}

// Handle decides the faulted child's fate according to the supervisor's
// restart strategy and budget. Under one-for-all, every other live tracked
// child is restarted through an injected restart event; the faulted child
// itself restarts through its escalation return path, so each child runs
// its restart hook exactly once per fault.
func (m ChildFault) Handle(s *Supervisor, ctx *Context) (Directive, error) {
	if _, ok := s.children[m.ID]; !ok {
		return StopDirective, nil
	}

	s.restarts[m.ID]++
	if s.maxRestarts > 0 && s.restarts[m.ID] > s.maxRestarts {
		ctx.Logger().Warnf("supervisor %s gives up on actor %d after %d restarts: %v",
			ctx.NameOrID(), m.ID, s.maxRestarts, m.Reason)
		s.forget(m.ID)
		return StopDirective, nil
	}

	if s.strategy == OneForAllStrategy {
		for id, child := range s.children {
			if id == m.ID {
				continue
			}
			if err := child.restart(); err != nil {
				// the sibling is already gone
				s.forget(id)
			}
		}
	}
	return RestartDirective, nil
}
