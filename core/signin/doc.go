// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package signin holds the UI-agnostic sign-in logic: the editable form
// fields, their validation rules and the submission state machine that
// simulates an asynchronous login.
//
// A Machine is driven by discrete events (Change, Submit, Complete, Close)
// from a single goroutine. Delayed completion is represented by a Ticket;
// callers schedule it with whatever timer their event loop offers and hand
// it back to Complete. Only the most recent ticket is ever honoured.
package signin
