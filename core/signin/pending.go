// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import "time"

// Ticket identifies one scheduled completion of a submission.
type Ticket struct {
	ID    uint64
	Delay time.Duration
	// Form is the snapshot that was validated when the ticket was issued.
	Form FormState
}

// PendingTimer owns at most one outstanding ticket. Starting a new ticket
// invalidates the previous one; a cancelled or superseded ticket never
// resolves.
type PendingTimer struct {
	next   uint64
	active uint64
}

// Start issues a new ticket and makes it the only live one.
func (p *PendingTimer) Start(delay time.Duration, form FormState) Ticket {
	p.next++
	p.active = p.next
	return Ticket{ID: p.active, Delay: delay, Form: form}
}

// Cancel drops the live ticket, if any.
func (p *PendingTimer) Cancel() {
	p.active = 0
}

// Active reports whether a ticket is outstanding.
func (p *PendingTimer) Active() bool {
	return p.active != 0
}

// Resolve consumes t if it is the live ticket.
func (p *PendingTimer) Resolve(t Ticket) bool {
	if t.ID == 0 || t.ID != p.active {
		return false
	}
	p.active = 0
	return true
}
