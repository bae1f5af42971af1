// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown sign-in variant")

// Status is the lifecycle stage of the simulated login request.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Variant selects the feature set of the form.
type Variant int

const (
	// VariantFull clears field errors on edit, completes after a delay and
	// supports the password visibility toggle.
	VariantFull Variant = iota
	// VariantBasic completes synchronously and only re-validates on submit.
	VariantBasic
)

func (v Variant) String() string {
	switch v {
	case VariantFull:
		return "full"
	case VariantBasic:
		return "basic"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses "full" or "basic" (case-insensitive). An empty string
// yields VariantFull.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return VariantFull, nil
	case "basic":
		return VariantBasic, nil
	}
	return VariantFull, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
