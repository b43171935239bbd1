package fst

import (
	"fmt"
	"testing"
)

func TestMinimizingBuilder_Basic(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})

	data := []struct {
		key   string
		value int64
	}{
		{"apple", 1},
		{"apply", 2},
		{"banana", 3},
	}

	for _, item := range data {
		if err := b.Add([]byte(item.key), item.value); err != nil {
			t.Fatalf("Add(%q): %v", item.key, err)
		}
	}

	f, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	for _, item := range data {
		got, ok, err := f.Get([]byte(item.key))
		if err != nil {
			t.Fatalf("Get(%q): %v", item.key, err)
		}
		if !ok {
			t.Errorf("key %q not found", item.key)
			continue
		}
		if got != item.value {
			t.Errorf("key %q: got %d, want %d", item.key, got, item.value)
		}
	}

	if ok, _ := f.Contains([]byte("app")); ok {
		t.Errorf("key 'app' should not exist")
	}
}

func TestMinimizingBuilder_EmptyKeyFirst(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})

	if err := b.Add([]byte(""), 7); err != nil {
		t.Fatalf("empty key as first Add should be accepted: %v", err)
	}
	if err := b.Add([]byte("a"), 1); err != nil {
		t.Fatalf("Add('a'): %v", err)
	}

	f, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	got, ok, err := f.Get([]byte(""))
	if err != nil {
		t.Fatalf("Get(''): %v", err)
	}
	if !ok || got != 7 {
		t.Errorf("empty key: got (%d, %t), want (7, true)", got, ok)
	}
}

func TestMinimizingBuilder_EmptyKeyAfterNonEmptyRejected(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})

	if err := b.Add([]byte("a"), 1); err != nil {
		t.Fatalf("Add('a'): %v", err)
	}
	if err := b.Add([]byte(""), 2); err == nil {
		t.Fatalf("expected an error adding an empty key after a non-empty one")
	}
}

func TestMinimizingBuilder_OrderValidation(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})

	if err := b.Add([]byte("a"), 1); err != nil {
		t.Fatalf("Add('a'): %v", err)
	}
	if err := b.Add([]byte("b"), 2); err != nil {
		t.Fatalf("Add('b'): %v", err)
	}
	if err := b.Add([]byte("a"), 3); err == nil {
		t.Fatalf("expected an out-of-order error adding 'a' after 'b'")
	}
}

func TestMinimizingBuilder_DuplicateKeyMerges(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})

	if err := b.Add([]byte("a"), 5); err != nil {
		t.Fatalf("Add('a', 5): %v", err)
	}
	if err := b.Add([]byte("a"), 2); err != nil {
		t.Fatalf("duplicate Add('a', 2) should merge via Int64Outputs.Merge: %v", err)
	}

	f, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	got, ok, err := f.Get([]byte("a"))
	if err != nil || !ok {
		t.Fatalf("Get('a'): %v, %t", err, ok)
	}
	if got != 2 {
		t.Errorf("merged output = %d, want 2 (min of 5 and 2)", got)
	}
}

func TestMinimizingBuilder_DuplicateKeyMergeFailure(t *testing.T) {
	b := NewMinimizingBuilder[[]byte](ByteSequenceOutputs{})

	if err := b.Add([]byte("a"), []byte("x")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add([]byte("a"), []byte("y")); err == nil {
		t.Fatalf("expected ByteSequenceOutputs.Merge to reject differing duplicate values")
	}
}

func TestMinimizingBuilder_EmptyBuilderFinishesToNil(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})
	f, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if f != nil {
		t.Errorf("expected nil FST when nothing was ever added")
	}
}

func TestMinimizingBuilder_FinishIsTerminal(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})
	_ = b.Add([]byte("a"), 1)
	if _, err := b.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := b.Add([]byte("b"), 2); err == nil {
		t.Fatalf("expected ErrFinished adding after Finish")
	}
	if _, err := b.Finish(); err == nil {
		t.Fatalf("expected ErrFinished calling Finish twice")
	}
}

// walkLabels follows labels one arc at a time from start, returning the
// CompiledNode reached after consuming all of them.
func walkLabels[T any](f *FST[T], start CompiledNode, labels []byte) (CompiledNode, error) {
	cur := start
	for _, lb := range labels {
		state, err := f.node(cur)
		if err != nil {
			return NoCompiledNode, err
		}
		idx, exact := arcSearch(state.Arcs, Label(lb))
		if !exact {
			return NoCompiledNode, fmt.Errorf("no arc for label %q from node %d", lb, cur)
		}
		cur = state.Arcs[idx].Target
	}
	return cur, nil
}

func TestMinimizingBuilder_PrunesLowCountSuffixes(t *testing.T) {
	cases := []struct {
		name            string
		keys            [][]byte
		values          []int64
		minSuffixCount1 int64
		wantAbsent      [][]byte
		wantPresent     map[string]int64
	}{
		{
			name:            "rare branch pruned, duplicate-merged branch survives",
			keys:            [][]byte{{1, 2}, {1, 3}, {1, 3}},
			values:          []int64{100, 20, 5},
			minSuffixCount1: 2,
			wantAbsent:      [][]byte{{1, 2}},
			wantPresent:     map[string]int64{string([]byte{1, 3}): 5}, // merged via min
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewMinimizingBuilder[int64](Int64Outputs{}, WithMinSuffixCount1[int64](tc.minSuffixCount1))
			for i, k := range tc.keys {
				if err := b.Add(k, tc.values[i]); err != nil {
					t.Fatalf("Add(%v, %d): %v", k, tc.values[i], err)
				}
			}
			f, err := b.Finish()
			if err != nil {
				t.Fatalf("Finish: %v", err)
			}

			for _, k := range tc.wantAbsent {
				if ok, err := f.Contains(k); err != nil || ok {
					t.Errorf("Contains(%v) = %t, %v; want absent (pruned as a low-count suffix)", k, ok, err)
				}
			}
			for k, want := range tc.wantPresent {
				got, ok, err := f.Get([]byte(k))
				if err != nil || !ok {
					t.Fatalf("Get(%q): %v, found=%t", k, err, ok)
				}
				if got != want {
					t.Errorf("Get(%q) = %d, want %d", k, got, want)
				}
			}
		})
	}
}

func TestMinimizingBuilder_SharesCommonSuffixes(t *testing.T) {
	// "stand" and "understand" share the suffix "stand"; with suffix
	// sharing enabled the shared tail should compile to the very same
	// CompiledNode handle.
	b := NewMinimizingBuilder[int64](Int64Outputs{})
	for _, w := range []string{"stand", "understand"} {
		if err := b.Add([]byte(w), 0); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	f, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	for _, w := range []string{"stand", "understand"} {
		if ok, err := f.Contains([]byte(w)); err != nil || !ok {
			t.Errorf("Contains(%q) = %t, %v", w, ok, err)
		}
	}

	rootState, err := f.node(f.Root())
	if err != nil {
		t.Fatalf("node(root): %v", err)
	}
	sIdx, exact := arcSearch(rootState.Arcs, Label('s'))
	if !exact {
		t.Fatalf("root has no 's' arc")
	}
	standSuffixNode := rootState.Arcs[sIdx].Target

	underNode, err := walkLabels(f, f.Root(), []byte("under"))
	if err != nil {
		t.Fatalf("walking 'under': %v", err)
	}
	underState, err := f.node(underNode)
	if err != nil {
		t.Fatalf("node(under): %v", err)
	}
	uIdx, exact := arcSearch(underState.Arcs, Label('s'))
	if !exact {
		t.Fatalf("node after 'under' has no 's' arc")
	}
	understandSuffixNode := underState.Arcs[uIdx].Target

	if standSuffixNode != understandSuffixNode {
		t.Errorf("suffix sharing broken: 'stand''s root-level 's' arc targets %d, "+
			"but 'understand''s 's' arc (after 'under') targets %d; want the same handle",
			standSuffixNode, understandSuffixNode)
	}
}
