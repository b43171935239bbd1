package fst

// mergeCursor tracks one input FST's current position during a multi-way
// merge walk over sorted key/output streams.
type mergeCursor[T any] struct {
	enum *Enumerator[T]
	cur  *Result[T]
}

func newMergeCursor[T any](f *FST[T]) (*mergeCursor[T], error) {
	e := NewEnumerator(f)
	c := &mergeCursor[T]{enum: e}
	if err := c.advance(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *mergeCursor[T]) advance() error {
	if c.enum.Next() {
		c.cur = c.enum.Current()
		return nil
	}
	c.cur = nil
	return c.enum.Err()
}

// Union builds a new FST containing every key present in any of fsts. A key
// present in more than one input has its outputs combined via
// outputs.Merge.
func Union[T any](outputs Outputs[T], fsts ...*FST[T]) (*FST[T], error) {
	return mergeWalk(outputs, fsts, func(present []bool) bool {
		for _, p := range present {
			if p {
				return true
			}
		}
		return false
	})
}

// Intersect builds a new FST containing only keys present in every input.
func Intersect[T any](outputs Outputs[T], fsts ...*FST[T]) (*FST[T], error) {
	return mergeWalk(outputs, fsts, func(present []bool) bool {
		if len(present) == 0 {
			return false
		}
		for _, p := range present {
			if !p {
				return false
			}
		}
		return true
	})
}

// Difference builds a new FST containing keys present in a but absent from
// every one of others.
func Difference[T any](outputs Outputs[T], a *FST[T], others ...*FST[T]) (*FST[T], error) {
	fsts := append([]*FST[T]{a}, others...)
	return mergeWalk(outputs, fsts, func(present []bool) bool {
		if !present[0] {
			return false
		}
		for _, p := range present[1:] {
			if p {
				return false
			}
		}
		return true
	})
}

// mergeWalk advances an Enumerator per input FST in lockstep, always
// consuming every cursor currently sitting on the lexicographically smallest
// key, and feeds keys keep approves into a fresh MinimizingBuilder. Because
// the smallest key strictly increases each round, builder.Add always
// receives its inputs in order.
func mergeWalk[T any](outputs Outputs[T], fsts []*FST[T], keep func(present []bool) bool) (*FST[T], error) {
	if len(fsts) == 0 {
		return nil, nil
	}

	cursors := make([]*mergeCursor[T], len(fsts))
	for i, f := range fsts {
		c, err := newMergeCursor(f)
		if err != nil {
			return nil, err
		}
		cursors[i] = c
	}

	b := NewMinimizingBuilder[T](outputs)
	present := make([]bool, len(fsts))

	for {
		var minLabels []Label
		haveMin := false
		for _, c := range cursors {
			if c.cur == nil {
				continue
			}
			if !haveMin || compareLabels(c.cur.Labels, minLabels) < 0 {
				minLabels = c.cur.Labels
				haveMin = true
			}
		}
		if !haveMin {
			break
		}

		var combined T
		haveCombined := false
		for i := range present {
			present[i] = false
		}
		for i, c := range cursors {
			if c.cur == nil || compareLabels(c.cur.Labels, minLabels) != 0 {
				continue
			}
			present[i] = true
			if !haveCombined {
				combined = c.cur.Output
				haveCombined = true
			} else {
				merged, err := outputs.Merge(combined, c.cur.Output)
				if err != nil {
					return nil, err
				}
				combined = merged
			}
			if err := c.advance(); err != nil {
				return nil, err
			}
		}

		if keep(present) {
			if err := b.addLabels(minLabels, combined); err != nil {
				return nil, err
			}
		}
	}

	return b.Finish()
}
