// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"context"
	"time"
)

// Run drives m through a whole sign-in without a terminal UI: it applies
// form, submits it and blocks until the submission completes or ctx is done.
//
// A failed validation is returned as the error of ValidationErrors.Err. When
// ctx ends first, m is closed and ctx.Err() is returned.
func Run(ctx context.Context, m *Machine, form FormState) error {
	for _, field := range Fields {
		if err := m.Change(field, form.Value(field)); err != nil {
			return err
		}
	}

	ticket, pending := m.Submit()
	if !pending {
		return m.Errors().Err()
	}
	return Await(ctx, m, ticket)
}

// Await waits for t's delay and completes it on m. The timer is released on
// every return path.
func Await(ctx context.Context, m *Machine, t Ticket) error {
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		m.Close()
		return ctx.Err()
	case <-timer.C:
		m.Complete(t)
		return nil
	}
}
