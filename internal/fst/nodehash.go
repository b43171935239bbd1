package fst

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// NodeHash is the structural-deduplication contract consumed only by the
// tail freezer: it hashes an uncompiled node's full arc sequence — labels,
// targets, outputs, finality flags, and final outputs — and returns either
// an existing compiled handle for a structurally identical node, or a
// freshly compiled one.
type NodeHash[T any] interface {
	Add(node *UncompiledNode[T]) (CompiledNode, error)
}

// signature renders node's structural identity as a byte sequence suitable
// for hashing and, on hash collision, exact comparison. Output values are
// rendered via fmt.Sprintf, which is deterministic for the comparable value
// types real Outputs[T] implementations use (int64, []byte, small structs);
// a 64-bit hash collision still requires the full signature string to match
// before two nodes are treated as the same. Two output values whose %v
// renderings are identical are not told apart.
func signature[T any](node *UncompiledNode[T]) string {
	var b []byte
	b = append(b, 'F')
	if node.IsFinal {
		b = append(b, '1')
		b = append(b, []byte(fmt.Sprintf("%v", node.FinalOutput))...)
	} else {
		b = append(b, '0')
	}
	for _, a := range node.Arcs {
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(a.Label), 10)
		b = append(b, ':')
		if a.Target.IsCompiled() {
			b = strconv.AppendInt(b, int64(a.Target.Compiled()), 10)
		} else {
			// Only ever true for the boundary node kept pending across a
			// freeze call; its identity is its pointer, since it cannot
			// yet be structurally compared.
			b = append(b, []byte(fmt.Sprintf("p%p", a.Target.Pending()))...)
		}
		b = append(b, ':')
		if a.IsFinal {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
		b = append(b, ':')
		b = append(b, []byte(fmt.Sprintf("%v", a.Output))...)
		b = append(b, ':')
		b = append(b, []byte(fmt.Sprintf("%v", a.NextFinalOutput))...)
	}
	return string(b)
}

type nodeHashEntry[T any] struct {
	sig    string
	handle CompiledNode
}

// defaultNodeHash is the unbounded structural-dedup NodeHash: a 64-bit
// xxhash digest of each node's signature, bucketed with full-signature
// collision resolution. This is a hash-then-verify strategy, not a
// byte-packed backing store — AddNode's contract only requires add/lookup.
type defaultNodeHash[T any] struct {
	store   CompiledStore[T]
	buckets map[uint64][]nodeHashEntry[T]
}

// newDefaultNodeHash creates a NodeHash that deduplicates against store.
func newDefaultNodeHash[T any](store CompiledStore[T]) *defaultNodeHash[T] {
	return &defaultNodeHash[T]{store: store, buckets: make(map[uint64][]nodeHashEntry[T])}
}

// Add implements NodeHash[T].
func (h *defaultNodeHash[T]) Add(node *UncompiledNode[T]) (CompiledNode, error) {
	sig := signature(node)
	key := xxhash.Sum64String(sig)

	for _, e := range h.buckets[key] {
		if e.sig == sig {
			return e.handle, nil
		}
	}

	handle, err := h.store.AddNode(node)
	if err != nil {
		return NoCompiledNode, err
	}
	h.buckets[key] = append(h.buckets[key], nodeHashEntry[T]{sig: sig, handle: handle})
	return handle, nil
}
