package policy

import (
	"context"
	"fmt"

	"github.com/hatsunemiku3939/personread"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Policy names accepted by ByName.
const (
	NameStrict = "strict"
	NameLegacy = "legacy"
)

// Result represents the exit decision and the error to attach.
type Result struct {
	ExitCode int
	Error    error
}

// Policy decides the final Result given a failure classification and the current decision.
type Policy interface {
	Decide(ctx context.Context, kind personread.FailureKind, inner error, current Result) Result
}

// StrictExitPolicy exits non-zero on every pipeline failure.
type StrictExitPolicy struct{}

// Decide implements StrictExitPolicy behavior.
func (p StrictExitPolicy) Decide(_ context.Context, kind personread.FailureKind, inner error, current Result) Result {
	switch kind {
	case personread.FailNone:
		return current
	case personread.FailRead, personread.FailDecode, personread.FailFormat:
		current.ExitCode = ExitFailure
		if inner != nil && current.Error == nil {
			current.Error = inner
		}
		return current
	default:
		current.ExitCode = ExitFailure
		return current
	}
}

// LegacyExitPolicy always exits zero, matching tools that only print the failure.
type LegacyExitPolicy struct{}

// Decide implements LegacyExitPolicy behavior.
func (p LegacyExitPolicy) Decide(_ context.Context, kind personread.FailureKind, inner error, current Result) Result {
	if kind == personread.FailNone {
		return current
	}
	current.ExitCode = ExitOK
	if inner != nil && current.Error == nil {
		current.Error = inner
	}
	return current
}

// ByName returns the policy registered under name.
func ByName(name string) (Policy, error) {
	switch name {
	case NameStrict, "":
		return StrictExitPolicy{}, nil
	case NameLegacy:
		return LegacyExitPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
