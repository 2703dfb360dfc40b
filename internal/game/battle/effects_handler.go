package battle

import (
	"iter"
	"log/slog"
)

// EffectsHandler stores the effects of one attachment point (a battler's volatile
// effects, one bank, or the whole field) in attachment order.
//
// Stacking rule for effects with the same name:
//   - the existing effect implements Refresher: it decides (refresh or reject)
//   - otherwise the new effect is rejected
//
// Not thread-safe: a battle is driven by a single goroutine.
type EffectsHandler struct {
	effects []Effect
}

// NewEffectsHandler creates an empty handler.
func NewEffectsHandler() *EffectsHandler {
	return &EffectsHandler{effects: make([]Effect, 0, 4)}
}

// Add attaches an effect. Returns false if the stacking rule rejected it.
func (h *EffectsHandler) Add(l *Logic, e Effect) bool {
	if existing := h.Get(e.Name()); existing != nil {
		if r, ok := existing.(Refresher); ok {
			return r.Refresh(l, e)
		}
		slog.Debug("effect rejected, already active", "effect", e.Name())
		return false
	}
	h.effects = append(h.effects, e)
	return true
}

// Replace attaches an effect, killing and replacing any live effect with the same
// name in place.
func (h *EffectsHandler) Replace(e Effect) {
	for i, existing := range h.effects {
		if existing.Name() == e.Name() && !existing.Dead() {
			existing.Kill()
			h.effects[i] = e
			return
		}
	}
	h.effects = append(h.effects, e)
}

// Get returns the live effect with the given name, or nil.
func (h *EffectsHandler) Get(name string) Effect {
	for _, e := range h.effects {
		if e.Name() == name && !e.Dead() {
			return e
		}
	}
	return nil
}

// Has reports whether a live effect with the given name is attached.
func (h *EffectsHandler) Has(name string) bool {
	return h.Get(name) != nil
}

// Remove kills the live effect with the given name.
// Returns false if there was none.
func (h *EffectsHandler) Remove(name string) bool {
	e := h.Get(name)
	if e == nil {
		return false
	}
	e.Kill()
	h.prune()
	return true
}

// All iterates the live effects in attachment order.
// Iteration works on a snapshot: effects attached during iteration are not visited,
// effects killed during iteration are skipped once reached.
func (h *EffectsHandler) All() iter.Seq[Effect] {
	snapshot := append([]Effect(nil), h.effects...)
	return func(yield func(Effect) bool) {
		for _, e := range snapshot {
			if e.Dead() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of live effects.
func (h *EffectsHandler) Len() int {
	n := 0
	for _, e := range h.effects {
		if !e.Dead() {
			n++
		}
	}
	return n
}

// Names returns the names of the live effects in attachment order.
func (h *EffectsHandler) Names() []string {
	names := make([]string, 0, len(h.effects))
	for e := range h.All() {
		names = append(names, e.Name())
	}
	return names
}

// Tick advances every counted effect by one turn boundary, calls OnExpire on the
// ones that ran out and drops dead effects.
func (h *EffectsHandler) Tick(l *Logic) {
	for e := range h.All() {
		c, ok := e.(Counted)
		if !ok || !c.UpdateCounter() {
			continue
		}
		if exp, ok := e.(Expirer); ok {
			exp.OnExpire(l)
		}
		slog.Debug("effect expired", "effect", e.Name())
	}
	h.prune()
}

// Clear kills every effect.
func (h *EffectsHandler) Clear() {
	for _, e := range h.effects {
		e.Kill()
	}
	h.effects = h.effects[:0]
}

func (h *EffectsHandler) prune() {
	n := 0
	for _, e := range h.effects {
		if !e.Dead() {
			h.effects[n] = e
			n++
		}
	}
	clear(h.effects[n:])
	h.effects = h.effects[:n]
}
