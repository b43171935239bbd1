package fst

import "fmt"

// builderState holds the frontier of uncompiled nodes and the bookkeeping
// needed to walk it. It is split out from MinimizingBuilder so that
// FreezeFunc (the freeze-tail extension point) can be swapped in without
// exposing the builder's public API surface.
type builderState[T any] struct {
	opts    *Options[T]
	outputs Outputs[T]
	store   CompiledStore[T]
	hash    NodeHash[T]

	frontier []*UncompiledNode[T]

	lastInput    []Label
	haveLastInput bool

	hasEmptyOutput bool
	emptyOutput    T
}

// ensureLen grows the frontier so indices [0, n] are valid, allocating fresh
// empty nodes with the correct depth for any newly needed slots.
func (b *builderState[T]) ensureLen(n int) {
	for len(b.frontier) <= n {
		b.frontier = append(b.frontier, newUncompiledNode[T](len(b.frontier)))
	}
}

// MinimizingBuilder consumes a lexicographically sorted stream of (key,
// value) pairs and incrementally produces a minimal FST.
type MinimizingBuilder[T any] struct {
	state    *builderState[T]
	freezeFn FreezeFunc[T]
	finished bool
}

// NewMinimizingBuilder creates a builder using outputs as the output algebra
// and opts to configure pruning, sharing, and the label domain.
func NewMinimizingBuilder[T any](outputs Outputs[T], opts ...Option[T]) *MinimizingBuilder[T] {
	o := DefaultOptions(outputs)
	o.apply(opts)

	store := o.store
	if store == nil {
		store = newMemStore[T]()
	}
	hash := o.nodeHash
	if hash == nil {
		hash = newDefaultNodeHash[T](store)
	}

	st := &builderState[T]{
		opts:        o,
		outputs:     outputs,
		store:       store,
		hash:        hash,
		frontier:    []*UncompiledNode[T]{newUncompiledNode[T](0)},
		emptyOutput: outputs.NoOutput(),
	}

	freezeFn := o.FreezeTailHook
	if freezeFn == nil {
		freezeFn = func(b *builderState[T], prefixLenPlus1 int) error { return b.freeze(prefixLenPlus1) }
	}

	return &MinimizingBuilder[T]{state: st, freezeFn: freezeFn}
}

// Add inserts the next (key, value) pair. key must sort at or after every
// previously added key; duplicates of the immediately preceding key are
// accepted only if outputs.Merge succeeds.
func (b *MinimizingBuilder[T]) Add(key []byte, output T) error {
	labels, err := b.state.opts.InputType.ToLabels(key)
	if err != nil {
		return err
	}
	return b.addLabels(labels, output)
}

func (b *MinimizingBuilder[T]) addLabels(input []Label, output T) error {
	if b.finished {
		return ErrFinished
	}
	st := b.state
	outputs := st.outputs

	if outputs.IsNoOutput(output) {
		output = outputs.NoOutput()
	}

	if len(input) == 0 {
		if st.frontier[0].InputCount > 0 {
			return ErrEmptyAfterNonEmpty
		}
		st.frontier[0].InputCount++
		st.frontier[0].IsFinal = true
		st.hasEmptyOutput = true
		st.emptyOutput = output
		return nil
	}

	cmp := compareLabels(input, st.lastInput)
	if st.haveLastInput && cmp < 0 {
		return fmt.Errorf("%w: %v < %v", ErrOutOfOrder, input, st.lastInput)
	}
	duplicate := st.haveLastInput && cmp == 0

	prefixLen := commonPrefixLen(input, st.lastInput)
	prefixLenPlus1 := prefixLen + 1

	for i := 0; i <= prefixLen; i++ {
		st.frontier[i].InputCount++
	}

	st.ensureLen(len(input))

	if err := b.freezeFn(st, prefixLenPlus1); err != nil {
		return err
	}

	for i := prefixLenPlus1; i <= len(input); i++ {
		st.frontier[i-1].AddArc(input[i-1], uncompiledNodeRef[T](st.frontier[i]))
		st.frontier[i].InputCount++
	}

	if !duplicate {
		st.frontier[len(input)].IsFinal = true
		st.frontier[len(input)].FinalOutput = outputs.NoOutput()
	}

	for i := 1; i < prefixLenPlus1; i++ {
		lastOutput := st.frontier[i-1].GetLastOutput(input[i-1])
		if !outputs.IsNoOutput(lastOutput) {
			common := outputs.Common(output, lastOutput)
			wordSuffix := outputs.Subtract(lastOutput, common)
			st.frontier[i-1].SetLastOutput(input[i-1], common)
			st.frontier[i].PrependOutput(outputs, wordSuffix)
			output = outputs.Subtract(output, common)
		}
	}

	if duplicate {
		merged, err := outputs.Merge(st.frontier[len(input)].FinalOutput, output)
		if err != nil {
			return fmt.Errorf("fst: merging duplicate key: %w", err)
		}
		st.frontier[len(input)].FinalOutput = merged
	} else {
		st.frontier[prefixLenPlus1-1].SetLastOutput(input[prefixLenPlus1-1], output)
	}

	st.lastInput = append(st.lastInput[:0], input...)
	st.haveLastInput = true
	return nil
}

// Finish freezes the remaining frontier and returns the compiled root, or
// (nil, nil) if nothing survived pruning and no empty-key output was
// recorded — this is not an error.
func (b *MinimizingBuilder[T]) Finish() (*FST[T], error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true
	st := b.state

	if err := b.freezeFn(st, 0); err != nil {
		return nil, err
	}

	root := st.frontier[0]
	survived := root.NumArcs() > 0
	if survived && st.opts.MinSuffixCount1 > 0 && root.InputCount < st.opts.MinSuffixCount1 {
		survived = false
	}

	if !survived {
		if !st.hasEmptyOutput {
			return nil, nil
		}
		return &FST[T]{
			store:          st.store,
			outputs:        st.outputs,
			hasEmptyOutput: true,
			emptyOutput:    st.emptyOutput,
			root:           NoCompiledNode,
			inType:         st.opts.InputType,
			packed:         st.opts.DoPackFST,
		}, nil
	}

	handle, err := st.store.AddNode(root)
	if err != nil {
		return nil, fmt.Errorf("fst: compiling root: %w", err)
	}

	return &FST[T]{
		store:          st.store,
		outputs:        st.outputs,
		hasEmptyOutput: st.hasEmptyOutput,
		emptyOutput:    st.emptyOutput,
		root:           handle,
		inType:         st.opts.InputType,
		packed:         st.opts.DoPackFST,
	}, nil
}

// compareLabels returns -1, 0, or 1 as a compares before, equal to, or
// after b lexicographically.
func compareLabels(a, b []Label) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
