package fst

import "fmt"

// Node is a tagged reference to either a still-uncompiled frontier node or an
// already-compiled node in the store. The discriminator is the single bit
// compiled, a tagged variant instead of back-pointer-based polymorphism.
type Node[T any] struct {
	compiled bool
	handle   CompiledNode
	pending  *UncompiledNode[T]
}

// compiledNodeRef wraps an already-compiled handle.
func compiledNodeRef[T any](h CompiledNode) Node[T] {
	return Node[T]{compiled: true, handle: h}
}

// uncompiledNodeRef wraps a still-uncompiled frontier node.
func uncompiledNodeRef[T any](n *UncompiledNode[T]) Node[T] {
	return Node[T]{pending: n}
}

// IsCompiled reports whether the target has already been compiled.
func (n Node[T]) IsCompiled() bool { return n.compiled }

// Compiled returns the compiled handle. It panics if the node is not
// compiled; callers must check IsCompiled first.
func (n Node[T]) Compiled() CompiledNode {
	if !n.compiled {
		panic("fst: Compiled() called on an uncompiled Node")
	}
	return n.handle
}

// Pending returns the uncompiled node. It panics if the node is already
// compiled; callers must check IsCompiled first.
func (n Node[T]) Pending() *UncompiledNode[T] {
	if n.compiled {
		panic("fst: Pending() called on a compiled Node")
	}
	return n.pending
}

// Arc is a pending, uncompiled transition: the value emitted on entering the
// arc (Output) and the value emitted if Target is final by way of this arc
// (NextFinalOutput).
type Arc[T any] struct {
	Label           Label
	Target          Node[T]
	IsFinal         bool
	Output          T
	NextFinalOutput T
}

// UncompiledNode is the in-memory representation of a frontier state: the
// set of pending outgoing arcs, finality, and the number of input keys that
// have passed through this node so far. Depth is fixed at allocation and is
// never changed even when the slot is later reused for an unrelated key.
type UncompiledNode[T any] struct {
	Depth       int
	Arcs        []Arc[T]
	IsFinal     bool
	FinalOutput T
	InputCount  int64
}

// newUncompiledNode allocates a fresh, empty frontier node at the given
// depth.
func newUncompiledNode[T any](depth int) *UncompiledNode[T] {
	return &UncompiledNode[T]{Depth: depth}
}

// NumArcs returns the number of pending outgoing arcs.
func (n *UncompiledNode[T]) NumArcs() int { return len(n.Arcs) }

// AddArc appends a new arc. Labels must be added in strictly ascending
// order; violating this is an internal builder bug, not a caller-facing
// error, so it panics rather than returning an error.
func (n *UncompiledNode[T]) AddArc(label Label, target Node[T]) {
	if len(n.Arcs) > 0 && label <= n.Arcs[len(n.Arcs)-1].Label {
		panic(fmt.Sprintf("fst: AddArc: label %d is not greater than last arc label %d", label, n.Arcs[len(n.Arcs)-1].Label))
	}
	n.Arcs = append(n.Arcs, Arc[T]{Label: label, Target: target})
}

// lastArc returns a pointer to the most recently added arc.
func (n *UncompiledNode[T]) lastArc() *Arc[T] {
	if len(n.Arcs) == 0 {
		panic("fst: node has no arcs")
	}
	return &n.Arcs[len(n.Arcs)-1]
}

// GetLastOutput returns the output of the last arc, asserting its label
// matches.
func (n *UncompiledNode[T]) GetLastOutput(label Label) T {
	a := n.lastArc()
	if a.Label != label {
		panic(fmt.Sprintf("fst: GetLastOutput: label mismatch, want %d got %d", label, a.Label))
	}
	return a.Output
}

// SetLastOutput overwrites the output of the last arc.
func (n *UncompiledNode[T]) SetLastOutput(label Label, value T) {
	a := n.lastArc()
	if a.Label != label {
		panic(fmt.Sprintf("fst: SetLastOutput: label mismatch, want %d got %d", label, a.Label))
	}
	a.Output = value
}

// ReplaceLast installs the compiled (or still-uncompiled, if not yet
// frozen) target on the last arc and sets its finality/next-final-output.
func (n *UncompiledNode[T]) ReplaceLast(label Label, target Node[T], nextFinalOutput T, isFinal bool) {
	a := n.lastArc()
	if a.Label != label {
		panic(fmt.Sprintf("fst: ReplaceLast: label mismatch, want %d got %d", label, a.Label))
	}
	a.Target = target
	a.NextFinalOutput = nextFinalOutput
	a.IsFinal = isFinal
}

// DeleteLast drops the last arc, used when the tail freezer prunes a
// diverging suffix whose input count fell below the configured threshold.
func (n *UncompiledNode[T]) DeleteLast(label Label, target Node[T]) {
	a := n.lastArc()
	if a.Label != label {
		panic(fmt.Sprintf("fst: DeleteLast: label mismatch, want %d got %d", label, a.Label))
	}
	n.Arcs = n.Arcs[:len(n.Arcs)-1]
}

// PrependOutput left-multiplies every arc's output and, if the node is
// final, its own final output, by prefix under the algebra's Add. The
// algebra is passed explicitly rather than retained on the node, avoiding an
// owner back-reference from node to builder.
func (n *UncompiledNode[T]) PrependOutput(outputs Outputs[T], prefix T) {
	if outputs.IsNoOutput(prefix) {
		return
	}
	for i := range n.Arcs {
		n.Arcs[i].Output = outputs.Add(prefix, n.Arcs[i].Output)
	}
	if n.IsFinal {
		n.FinalOutput = outputs.Add(prefix, n.FinalOutput)
	}
}

// Clear resets num_arcs, is_final, final_output, and input_count so the
// slot can be reused for a new key's tail. Depth is retained, since a
// frontier slot always represents the same depth from the root regardless
// of which key currently occupies it.
func (n *UncompiledNode[T]) Clear(outputs Outputs[T]) {
	n.Arcs = n.Arcs[:0]
	n.IsFinal = false
	n.FinalOutput = outputs.NoOutput()
	n.InputCount = 0
}
