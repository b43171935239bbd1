package fst

// levenshteinState is one (position, errors) cell of a Levenshtein
// automaton's state table.
type levenshteinState struct {
	Position int
	Errors   int
	IsValid  bool
}

// levenshteinAutomaton tracks every way pattern could be read with at most
// MaxDistance insertions/deletions/substitutions, advancing one input label
// at a time so it composes with FuzzySearch walking a compiled FST directly.
type levenshteinAutomaton struct {
	Pattern     []Label
	MaxDistance int
	States      [][]levenshteinState // [position][errors]
}

func newLevenshteinAutomaton(pattern []Label, maxDistance int) *levenshteinAutomaton {
	patternLen := len(pattern)
	states := make([][]levenshteinState, patternLen+maxDistance+1)
	for i := range states {
		states[i] = make([]levenshteinState, maxDistance+1)
	}
	for e := 0; e <= maxDistance; e++ {
		states[e][e] = levenshteinState{Position: e, Errors: e, IsValid: true}
	}
	return &levenshteinAutomaton{Pattern: pattern, MaxDistance: maxDistance, States: states}
}

// step advances the automaton with the given input label, returning a new
// automaton (the old one is left untouched so callers can backtrack during a
// DFS over an FST without recomputing ancestor states).
func (la *levenshteinAutomaton) step(label Label) *levenshteinAutomaton {
	patternLen := len(la.Pattern)
	newStates := make([][]levenshteinState, patternLen+la.MaxDistance+1)
	for i := range newStates {
		newStates[i] = make([]levenshteinState, la.MaxDistance+1)
	}

	for pos := 0; pos < len(la.States); pos++ {
		for err := 0; err <= la.MaxDistance; err++ {
			cur := la.States[pos][err]
			if !cur.IsValid {
				continue
			}

			// Match/substitution: advance both pattern and input.
			if pos < patternLen {
				nextPos := pos + 1
				nextErr := err
				if la.Pattern[pos] != label {
					nextErr++
				}
				if nextErr <= la.MaxDistance && nextPos < len(newStates) {
					newStates[nextPos][nextErr] = levenshteinState{Position: nextPos, Errors: nextErr, IsValid: true}
				}
			}

			// Insertion: advance input only.
			if err+1 <= la.MaxDistance && pos < len(newStates) {
				newStates[pos][err+1] = levenshteinState{Position: pos, Errors: err + 1, IsValid: true}
			}
		}
	}

	// Deletion: advance pattern only, without consuming input. Positions are
	// visited in ascending order so chains of deletions are followed.
	for pos := 0; pos < patternLen; pos++ {
		for err := 0; err < la.MaxDistance; err++ {
			if newStates[pos][err].IsValid {
				newStates[pos+1][err+1] = levenshteinState{Position: pos + 1, Errors: err + 1, IsValid: true}
			}
		}
	}

	return &levenshteinAutomaton{Pattern: la.Pattern, MaxDistance: la.MaxDistance, States: newStates}
}

// isMatch reports whether the pattern has been fully consumed within
// MaxDistance errors. Trailing deletions for a shorter input are already
// folded into the states by newLevenshteinAutomaton and step.
func (la *levenshteinAutomaton) isMatch() bool {
	patternLen := len(la.Pattern)
	for err := 0; err <= la.MaxDistance; err++ {
		if patternLen < len(la.States) && la.States[patternLen][err].IsValid {
			return true
		}
		for pos := patternLen; pos < len(la.States) && pos <= patternLen+err; pos++ {
			if la.States[pos][err].IsValid {
				return true
			}
		}
	}
	return false
}

// canMatch reports whether any state remains reachable; FuzzySearch uses
// this to prune a subtree once every alignment has exceeded MaxDistance.
func (la *levenshteinAutomaton) canMatch() bool {
	for i := range la.States {
		for j := range la.States[i] {
			if la.States[i][j].IsValid {
				return true
			}
		}
	}
	return false
}

// FuzzySearch walks f depth-first, following only arcs the Levenshtein
// automaton says can still lead to a match within maxDistance, and returns
// every matching key with its accumulated output. The automaton's canMatch
// check prunes whole compiled subtrees that cannot match; a shared tail that
// is not pruned is walked once for each path that reaches it.
func FuzzySearch[T any](f *FST[T], pattern []byte, maxDistance int) ([]Result[T], error) {
	patternLabels := make([]Label, len(pattern))
	for i, b := range pattern {
		patternLabels[i] = Label(b)
	}
	automaton := newLevenshteinAutomaton(patternLabels, maxDistance)

	var results []Result[T]
	if f.IsEmpty() {
		return results, nil
	}
	if f.root == NoCompiledNode {
		if f.hasEmptyOutput && automaton.isMatch() {
			results = append(results, Result[T]{Output: f.emptyOutput})
		}
		return results, nil
	}

	root, err := f.node(f.root)
	if err != nil {
		return nil, err
	}
	err = fuzzyWalk(f, root, nil, f.outputs.NoOutput(), automaton, &results)
	return results, err
}

func fuzzyWalk[T any](f *FST[T], state *FrozenState[T], labels []Label, output T, automaton *levenshteinAutomaton, results *[]Result[T]) error {
	if state.IsFinal && automaton.isMatch() {
		final := f.outputs.Add(output, state.FinalOutput)
		*results = append(*results, Result[T]{Labels: append([]Label(nil), labels...), Output: final})
	}
	if !automaton.canMatch() {
		return nil
	}
	for _, arc := range state.Arcs {
		next := automaton.step(arc.Label)
		if !next.canMatch() {
			continue
		}
		child, err := f.node(arc.Target)
		if err != nil {
			return err
		}
		childOutput := f.outputs.Add(output, arc.Output)
		if err := fuzzyWalk(f, child, append(labels, arc.Label), childOutput, next, results); err != nil {
			return err
		}
	}
	return nil
}
