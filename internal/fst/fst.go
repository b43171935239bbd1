// Package fst implements an incremental, minimizing finite-state-transducer
// construction engine: it ingests a lexicographically sorted stream of
// (key, value) pairs and emits a minimal, deterministic, acyclic, labeled
// graph whose paths enumerate the input keys and whose edge-labeled output
// algebra reconstructs the associated values.
package fst

import "fmt"

// FST is the compiled artifact produced by MinimizingBuilder.Finish: an
// opaque root handle plus the store and output algebra needed to traverse
// it. It has no file format of its own — a real on-disk, byte-packed
// encoding is an external concern.
type FST[T any] struct {
	root    CompiledNode
	store   CompiledStore[T]
	outputs Outputs[T]

	hasEmptyOutput bool
	emptyOutput    T

	inType InputType

	// packed records whether the caller asked for post-Finish packing;
	// packing itself is not implemented here, so this is purely
	// informational for a downstream packer.
	packed bool
}

// Root returns the compiled handle of the FST's entry point. It is
// NoCompiledNode if and only if the FST has no non-empty keys (possibly
// still carrying an EmptyOutput).
func (f *FST[T]) Root() CompiledNode { return f.root }

// IsEmpty reports whether the FST carries no keys whatsoever (not even the
// empty key).
func (f *FST[T]) IsEmpty() bool { return f.root == NoCompiledNode && !f.hasEmptyOutput }

// EmptyOutput returns the output recorded for the empty key, if any.
func (f *FST[T]) EmptyOutput() (T, bool) { return f.emptyOutput, f.hasEmptyOutput }

// InputType reports the label domain this FST was built with.
func (f *FST[T]) InputType() InputType { return f.inType }

// Packed reports whether the caller requested post-Finish packing; the
// in-memory store here is never actually packed.
func (f *FST[T]) Packed() bool { return f.packed }

// node fetches the FrozenState for a compiled handle.
func (f *FST[T]) node(h CompiledNode) (*FrozenState[T], error) {
	return f.store.Node(h)
}

// Get performs an exact lookup, returning the accumulated output for key and
// whether it was found. It is a thin convenience wrapper over Enumerator's
// SeekExact.
func (f *FST[T]) Get(key []byte) (T, bool, error) {
	labels, err := f.inType.ToLabels(key)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if len(labels) == 0 {
		if f.hasEmptyOutput {
			return f.emptyOutput, true, nil
		}
		var zero T
		return zero, false, nil
	}

	e := NewEnumerator(f)
	result, err := e.SeekExact(labels)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if result == nil {
		var zero T
		return zero, false, nil
	}
	return result.Output, true, nil
}

// Contains reports whether key is present.
func (f *FST[T]) Contains(key []byte) (bool, error) {
	_, ok, err := f.Get(key)
	return ok, err
}

func (f *FST[T]) String() string {
	return fmt.Sprintf("FST{inputType=%s, root=%d, hasEmptyOutput=%t}", f.inType, f.root, f.hasEmptyOutput)
}
