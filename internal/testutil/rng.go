// Package testutil holds helpers shared by tests of several packages.
package testutil

// ScriptedRNG replays a fixed sequence of values. Each call returns the next value
// modulo n; once the sequence is exhausted it returns n-1, which means no critical
// hit, maximum damage roll and a failed secondary-effect roll.
type ScriptedRNG struct {
	seq   []int
	next  int
	Calls []int // the n of every call, for asserting draw order
}

// NewScriptedRNG returns an RNG replaying values.
func NewScriptedRNG(values ...int) *ScriptedRNG {
	return &ScriptedRNG{seq: values}
}

func (r *ScriptedRNG) IntN(n int) int {
	r.Calls = append(r.Calls, n)
	if r.next >= len(r.seq) {
		return n - 1
	}
	v := r.seq[r.next] % n
	r.next++
	return v
}

// Remaining returns how many scripted values were not consumed.
func (r *ScriptedRNG) Remaining() int { return len(r.seq) - r.next }
