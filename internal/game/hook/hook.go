// Package hook implements named, ordered extension points.
//
// A Hook is a list of (reason, callback) entries evaluated in registration order.
// The Mode decides how results are combined:
//   - ShortCircuit: the first callback answering ok=true wins, the rest are skipped.
//   - FanOut: every callback runs; results are folded or ignored by the caller.
//
// Registration order is data: callers register built-in rules first and catalog
// rules afterwards, and precedence between overlapping rules follows that order.
package hook

import (
	"fmt"
	"log/slog"
)

// Mode selects how a hook combines the answers of its callbacks.
type Mode int8

const (
	ShortCircuit Mode = iota // first ok answer wins
	FanOut                   // all callbacks invoked
)

func (m Mode) String() string {
	switch m {
	case ShortCircuit:
		return "short_circuit"
	case FanOut:
		return "fan_out"
	default:
		return fmt.Sprintf("mode(%d)", int8(m))
	}
}

// Func is a hook callback. ok=false means "no opinion".
type Func[A, R any] func(args A) (R, bool)

type entry[A, R any] struct {
	reason string
	fn     Func[A, R]
}

// Hook is a named extension point.
// Not safe for concurrent registration; hooks are built once at startup and only read afterwards.
type Hook[A, R any] struct {
	name    string
	mode    Mode
	entries []entry[A, R]
}

// New creates an empty hook.
func New[A, R any](name string, mode Mode) *Hook[A, R] {
	return &Hook[A, R]{name: name, mode: mode}
}

func (h *Hook[A, R]) Name() string { return h.name }
func (h *Hook[A, R]) Mode() Mode   { return h.mode }
func (h *Hook[A, R]) Len() int     { return len(h.entries) }

// Register appends a callback. Registering the same reason twice replaces the
// earlier callback in place, keeping its position.
func (h *Hook[A, R]) Register(reason string, fn Func[A, R]) {
	for i := range h.entries {
		if h.entries[i].reason == reason {
			h.entries[i].fn = fn
			return
		}
	}
	h.entries = append(h.entries, entry[A, R]{reason: reason, fn: fn})
}

// Unregister removes the callback registered under reason.
// Returns false if nothing was registered under that reason.
func (h *Hook[A, R]) Unregister(reason string) bool {
	for i := range h.entries {
		if h.entries[i].reason == reason {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Reasons returns the registered reasons in evaluation order.
func (h *Hook[A, R]) Reasons() []string {
	out := make([]string, len(h.entries))
	for i := range h.entries {
		out[i] = h.entries[i].reason
	}
	return out
}

// Run evaluates the hook.
//
// ShortCircuit returns the first ok answer along with the reason that produced it.
// FanOut invokes every callback and returns the last ok answer.
func (h *Hook[A, R]) Run(args A) (result R, reason string, ok bool) {
	for i := range h.entries {
		r, answered := h.entries[i].fn(args)
		if !answered {
			continue
		}
		result, reason, ok = r, h.entries[i].reason, true
		if h.mode == ShortCircuit {
			slog.Debug("hook answered", "hook", h.name, "reason", reason)
			return result, reason, ok
		}
	}
	return result, reason, ok
}

// Fold invokes every callback and combines the ok answers with combine, starting
// from init. Folding a ShortCircuit hook stops at the first ok answer.
func (h *Hook[A, R]) Fold(args A, init R, combine func(acc, r R) R) R {
	acc := init
	for i := range h.entries {
		r, answered := h.entries[i].fn(args)
		if !answered {
			continue
		}
		acc = combine(acc, r)
		if h.mode == ShortCircuit {
			break
		}
	}
	return acc
}

// Product folds float multipliers by multiplication.
func Product(acc, r float64) float64 { return acc * r }
