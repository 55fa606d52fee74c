package epidemic

// Trajectory is the ordered (time, state) series produced by a solve.
// It is immutable once produced; consumers read, never write.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// At returns the i-th sample.
func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

// Series extracts one compartment's values across all samples, in a
// fresh slice safe for the caller to mutate.
func (tr *Trajectory) Series(compartment int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[compartment]
	}
	return out
}

// Final returns the last sampled state.
func (tr *Trajectory) Final() State {
	return tr.States[len(tr.States)-1]
}
