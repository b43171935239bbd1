package fst

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func keysOf(t *testing.T, f *FST[int64]) []string {
	t.Helper()
	var got []string
	e := NewEnumerator(f)
	for e.Next() {
		got = append(got, string(labelsToBytes(e.Current().Labels)))
	}
	require.NoError(t, e.Err())
	sort.Strings(got)
	return got
}

func TestUnion_CombinesKeysAndMergesOverlaps(t *testing.T) {
	a := buildByteInt64(t, map[string]int64{"ant": 1, "bee": 2})
	b := buildByteInt64(t, map[string]int64{"bee": 5, "cat": 3})

	u, err := Union[int64](Int64Outputs{}, a, b)
	require.NoError(t, err)
	require.NotNil(t, u)

	require.Equal(t, []string{"ant", "bee", "cat"}, keysOf(t, u))

	got, ok, err := u.Get([]byte("bee"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), got) // Int64Outputs.Merge keeps the minimum
}

func TestIntersect_KeepsOnlyKeysInEveryInput(t *testing.T) {
	a := buildByteInt64(t, map[string]int64{"ant": 1, "bee": 2})
	b := buildByteInt64(t, map[string]int64{"bee": 5, "cat": 3})

	i, err := Intersect[int64](Int64Outputs{}, a, b)
	require.NoError(t, err)
	require.NotNil(t, i)

	require.Equal(t, []string{"bee"}, keysOf(t, i))
	got, ok, err := i.Get([]byte("bee"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), got)
}

func TestDifference_RemovesKeysPresentInOthers(t *testing.T) {
	a := buildByteInt64(t, map[string]int64{"ant": 1, "bee": 2, "cat": 3})
	b := buildByteInt64(t, map[string]int64{"bee": 5})
	c := buildByteInt64(t, map[string]int64{"cat": 9})

	d, err := Difference[int64](Int64Outputs{}, a, b, c)
	require.NoError(t, err)
	require.NotNil(t, d)

	require.Equal(t, []string{"ant"}, keysOf(t, d))
	got, ok, err := d.Get([]byte("ant"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), got)
}

func TestIntersect_DisjointInputsYieldsEmptyResult(t *testing.T) {
	a := buildByteInt64(t, map[string]int64{"ant": 1})
	b := buildByteInt64(t, map[string]int64{"bee": 2})

	i, err := Intersect[int64](Int64Outputs{}, a, b)
	require.NoError(t, err)
	if i != nil {
		require.Empty(t, keysOf(t, i))
	}
}
