package fst

import "fmt"

// compileNode compiles node, routing through the NodeHash for structural
// dedup when the sharing policy says to, or directly into the store
// otherwise. tailLength is the distance from node to the end of the last
// input (1 + len(lastInput) - i for a node at frontier index i).
func (b *builderState[T]) compileNode(node *UncompiledNode[T], tailLength int) (CompiledNode, error) {
	if !b.opts.DoShareSuffix {
		return b.store.AddNode(node)
	}
	if (b.opts.DoShareNonSingletonNodes || node.NumArcs() <= 1) && tailLength <= b.opts.ShareMaxTailLength {
		return b.hash.Add(node)
	}
	return b.store.AddNode(node)
}

// compileChildren ensures every arc of node targets an already-compiled
// node, compiling the rare still-pending boundary child left over from a
// previous freeze call. tailLength is node's own tail length; its children
// are one label deeper, hence tailLength-1.
func (b *builderState[T]) compileChildren(node *UncompiledNode[T], tailLength int) error {
	for i := range node.Arcs {
		a := &node.Arcs[i]
		if a.Target.IsCompiled() {
			continue
		}
		handle, err := b.compileNode(a.Target.Pending(), tailLength-1)
		if err != nil {
			return fmt.Errorf("fst: compiling pending child: %w", err)
		}
		a.Target = compiledNodeRef[T](handle)
	}
	return nil
}

// freeze is the default tail freezer. It walks frontier indices from
// len(lastInput) down to max(1, prefixLenPlus1), deciding for
// each node whether to prune it, compile it, or leave it pending across this
// call, and threads the result back into its parent's last arc.
//
// i == prefixLenPlus1 is always the shallowest node this call ever touches;
// it is the only index where doCompile can come out false, which is also the
// only case where the frontier slot itself must be swapped out for a fresh
// node rather than cleared in place — the old node stays referenced,
// uncompiled, from its parent's arc until a later freeze call compiles it.
func (b *builderState[T]) freeze(prefixLenPlus1 int) error {
	lowerBound := prefixLenPlus1
	if lowerBound < 1 {
		lowerBound = 1
	}

	for i := len(b.lastInput); i >= lowerBound; i-- {
		node := b.frontier[i]
		parent := b.frontier[i-1]
		label := b.lastInput[i-1]
		tailLength := 1 + len(b.lastInput) - i

		var doPrune, doCompile bool
		switch {
		case node.InputCount < b.opts.MinSuffixCount1:
			doPrune, doCompile = true, true
		case i > prefixLenPlus1:
			if parent.InputCount < b.opts.MinSuffixCount2 ||
				(b.opts.MinSuffixCount2 == 1 && parent.InputCount == 1 && i > 1) {
				doPrune = true
			}
			doCompile = true
		default: // i == prefixLenPlus1
			doPrune = false
			doCompile = b.opts.MinSuffixCount2 == 0
		}

		// Drop the subtree entirely if the node itself fails the count-2
		// test, independent of whether it will be pruned from its parent
		// below.
		if node.InputCount < b.opts.MinSuffixCount2 ||
			(b.opts.MinSuffixCount2 == 1 && node.InputCount == 1 && i > 1) {
			node.Arcs = node.Arcs[:0]
		}

		if doPrune {
			node.Clear(b.outputs)
			parent.DeleteLast(label, uncompiledNodeRef[T](node))
			continue
		}

		if b.opts.MinSuffixCount2 != 0 {
			if err := b.compileChildren(node, tailLength); err != nil {
				return err
			}
		}
		// Dead-end nodes are forced final so downstream enumeration never
		// has to special-case a state with no arcs and no final marker.
		node.IsFinal = node.IsFinal || node.NumArcs() == 0

		if doCompile {
			handle, err := b.compileNode(node, tailLength)
			if err != nil {
				return fmt.Errorf("fst: compiling node at depth %d: %w", node.Depth, err)
			}
			parent.ReplaceLast(label, compiledNodeRef[T](handle), node.FinalOutput, node.IsFinal)
			node.Clear(b.outputs)
		} else {
			parent.ReplaceLast(label, uncompiledNodeRef[T](node), node.FinalOutput, node.IsFinal)
			b.frontier[i] = newUncompiledNode[T](node.Depth)
		}
	}
	return nil
}
