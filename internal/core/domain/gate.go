package domain

// GateState is the outcome of a test framework gate.
type GateState struct {
	Missing bool
	Skipped bool
}

// EvaluateGate computes the gate from the framework probe and the skip flag.
// The generated status target encodes the same formulas for the script engine.
func EvaluateGate(present, skip bool) GateState {
	return GateState{
		Missing: !present && !skip,
		Skipped: !present || skip,
	}
}
