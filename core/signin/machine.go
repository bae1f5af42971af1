// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"errors"
	"time"

	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/internal/logging"
)

// DefaultDelay is how long the simulated login takes in the full variant.
const DefaultDelay = 850 * time.Millisecond

// NoDelay makes a valid submission succeed synchronously.
const NoDelay time.Duration = -1

var ErrClosed = errors.New("sign-in form is closed")

// Options configures a Machine.
type Options struct {
	Variant Variant
	// Delay before a valid submission succeeds. Zero means DefaultDelay,
	// NoDelay (or any negative value) completes synchronously. Ignored by
	// VariantBasic.
	Delay     time.Duration
	Validator Validator
}

// Machine is the sign-in state machine. It is not safe for concurrent use;
// all events must come from one goroutine.
type Machine struct {
	opts Options

	form         FormState
	errors       ValidationErrors
	status       Status
	message      string
	showPassword bool

	pending PendingTimer
	closed  bool
}

func NewMachine(opts Options) *Machine {
	return &Machine{opts: opts}
}

func (m *Machine) Variant() Variant         { return m.opts.Variant }
func (m *Machine) Form() FormState          { return m.form }
func (m *Machine) Errors() ValidationErrors { return m.errors }
func (m *Machine) Status() Status           { return m.status }
func (m *Machine) Message() string          { return m.message }
func (m *Machine) PasswordVisible() bool    { return m.showPassword }
func (m *Machine) Loading() bool            { return m.status == StatusLoading }
func (m *Machine) Closed() bool             { return m.closed }

func (m *Machine) delay() time.Duration {
	if m.opts.Variant == VariantBasic || m.opts.Delay < 0 {
		return 0
	}
	if m.opts.Delay == 0 {
		return DefaultDelay
	}
	return m.opts.Delay
}

// Change sets field to value.
func (m *Machine) Change(field Field, value any) error {
	if m.closed {
		return ErrClosed
	}

	form, err := m.form.With(field, value)
	if err != nil {
		return err
	}
	m.form = form

	if m.opts.Variant == VariantFull {
		m.errors = m.errors.Without(field)
		if m.status != StatusLoading {
			m.status = StatusIdle
			m.message = ""
		}
	}
	return nil
}

// Submit validates the form and, when it passes, starts a new pending
// completion. The returned ticket must be handed to Complete once its delay
// has elapsed; ok is false when there is nothing to schedule, either because
// validation failed or because the submission already completed.
func (m *Machine) Submit() (ticket Ticket, ok bool) {
	if m.closed {
		return Ticket{}, false
	}

	errs := m.opts.Validator.Validate(m.form)
	if !errs.Passed() {
		m.pending.Cancel()
		m.errors = errs
		m.status = StatusIdle
		m.message = ""
		logging.Debugf("sign-in validation failed: %v", errs.Err())
		return Ticket{}, false
	}

	m.errors = nil
	// supersedes any earlier ticket
	ticket = m.pending.Start(m.delay(), m.form)
	m.status = StatusLoading
	m.message = ""
	logging.Debugf("sign-in submission %d pending for %s", ticket.ID, ticket.Delay)

	if ticket.Delay == 0 {
		m.Complete(ticket)
		return ticket, false
	}
	return ticket, true
}

// Complete resolves t. Stale, cancelled or post-teardown tickets are ignored
// and reported as false.
func (m *Machine) Complete(t Ticket) bool {
	if m.closed || !m.pending.Resolve(t) {
		logging.Debugf("sign-in submission %d dropped", t.ID)
		return false
	}
	m.status = StatusSuccess
	m.message = SuccessMessage(t.Form)
	logging.Infof("sign-in submission %d succeeded", t.ID)
	return true
}

// TogglePasswordVisibility flips password visibility. It is refused in the
// basic variant and while a submission is pending.
func (m *Machine) TogglePasswordVisibility() bool {
	if m.closed || m.opts.Variant != VariantFull || m.status == StatusLoading {
		return false
	}
	m.showPassword = !m.showPassword
	return true
}

// Close tears the machine down. The pending ticket is cancelled and every
// later event is ignored.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	if m.pending.Active() {
		logging.Debugf("sign-in form closed with a pending submission")
	}
	m.pending.Cancel()
	m.closed = true
}

// SuccessMessage is the result shown once the simulated login for f completes.
func SuccessMessage(f FormState) string {
	data := map[string]any{"Email": f.Email}
	if f.Remember {
		return i18n.T("signin.success.remember", data)
	}
	return i18n.T("signin.success.forget", data)
}
