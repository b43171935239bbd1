package fst

import "fmt"

// CompiledNode is an opaque handle to an already-compiled node. In practice
// it is the index of the node's FrozenState within a CompiledStore — a
// stand-in for "byte offset of the serialized node within the compiled
// store". A real byte-packed on-disk encoding is an external concern this
// package does not implement.
type CompiledNode int64

// NoCompiledNode is the null compiled-node sentinel. It is the Root of an FST
// in which no non-empty key survived, and the handle returned alongside an
// error by NodeHash implementations.
const NoCompiledNode CompiledNode = -1

// FrozenArc is the compiled, immutable form of an Arc: its target is always
// itself a CompiledNode, since a node is only frozen once every arc target
// it owns has already been compiled.
type FrozenArc[T any] struct {
	Label           Label
	Target          CompiledNode
	IsFinal         bool
	Output          T
	NextFinalOutput T
}

// FrozenState is the compiled, immutable form of an UncompiledNode.
type FrozenState[T any] struct {
	Arcs        []FrozenArc[T]
	IsFinal     bool
	FinalOutput T
}

// CompiledStore is the external node-hash storage backend contract: it
// accepts uncompiled nodes whose arc targets are already compiled, and
// returns a stable handle. Blocking I/O, if any, is entirely this backend's
// concern.
type CompiledStore[T any] interface {
	// AddNode freezes and stores node, returning its handle. Every arc in
	// node must already target a CompiledNode.
	AddNode(node *UncompiledNode[T]) (CompiledNode, error)

	// Node retrieves the FrozenState for a previously returned handle.
	Node(h CompiledNode) (*FrozenState[T], error)
}

// memStore is the in-memory reference CompiledStore: an append-only slice of
// FrozenState. It is monotonic — compiled nodes are never deallocated.
type memStore[T any] struct {
	nodes []*FrozenState[T]
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{}
}

// freeze converts an UncompiledNode into its immutable FrozenState. Every
// arc target must already be a compiled handle.
func freeze[T any](node *UncompiledNode[T]) *FrozenState[T] {
	fs := &FrozenState[T]{
		Arcs:        make([]FrozenArc[T], len(node.Arcs)),
		IsFinal:     node.IsFinal,
		FinalOutput: node.FinalOutput,
	}
	for i, a := range node.Arcs {
		if !a.Target.IsCompiled() {
			panic("fst: cannot freeze a node with an uncompiled arc target")
		}
		fs.Arcs[i] = FrozenArc[T]{
			Label:           a.Label,
			Target:          a.Target.Compiled(),
			IsFinal:         a.IsFinal,
			Output:          a.Output,
			NextFinalOutput: a.NextFinalOutput,
		}
	}
	return fs
}

// AddNode implements CompiledStore[T].
func (s *memStore[T]) AddNode(node *UncompiledNode[T]) (CompiledNode, error) {
	s.nodes = append(s.nodes, freeze(node))
	return CompiledNode(len(s.nodes) - 1), nil
}

// Node implements CompiledStore[T].
func (s *memStore[T]) Node(h CompiledNode) (*FrozenState[T], error) {
	if h < 0 || int(h) >= len(s.nodes) {
		return nil, fmt.Errorf("%w: compiled node handle %d", ErrNotFound, h)
	}
	return s.nodes[h], nil
}

// Len reports how many compiled nodes the store holds.
func (s *memStore[T]) Len() int { return len(s.nodes) }
