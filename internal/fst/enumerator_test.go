package fst

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildByteInt64(t *testing.T, pairs map[string]int64) *FST[int64] {
	t.Helper()
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := NewMinimizingBuilder[int64](Int64Outputs{})
	for _, k := range keys {
		require.NoError(t, b.Add([]byte(k), pairs[k]))
	}
	f, err := b.Finish()
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

func TestEnumerator_NextVisitsEveryKeyInOrder(t *testing.T) {
	pairs := map[string]int64{"ant": 1, "apple": 2, "ape": 3, "banana": 4, "band": 5}
	f := buildByteInt64(t, pairs)

	var got []string
	e := NewEnumerator(f)
	for e.Next() {
		r := e.Current()
		got = append(got, string(labelsToBytes(r.Labels)))
	}
	require.NoError(t, e.Err())

	want := []string{"ant", "ape", "apple", "banana", "band"}
	require.Equal(t, want, got)
}

func TestEnumerator_SeekExact(t *testing.T) {
	pairs := map[string]int64{"ant": 1, "apple": 2, "banana": 4}
	f := buildByteInt64(t, pairs)
	e := NewEnumerator(f)

	r, err := e.SeekExact(mustLabels(t, "apple"))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, int64(2), r.Output)

	r, err = e.SeekExact(mustLabels(t, "missing"))
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestEnumerator_SeekCeilAndFloor(t *testing.T) {
	pairs := map[string]int64{"ant": 1, "apple": 2, "banana": 4}
	f := buildByteInt64(t, pairs)

	e := NewEnumerator(f)
	r, err := e.SeekCeil(mustLabels(t, "ao"))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, "apple", string(labelsToBytes(r.Labels)))

	r, err = e.SeekFloor(mustLabels(t, "ao"))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, "ant", string(labelsToBytes(r.Labels)))

	r, err = e.SeekCeil(mustLabels(t, "zzz"))
	require.NoError(t, err)
	require.Nil(t, r)

	r, err = e.SeekFloor(mustLabels(t, ""))
	require.NoError(t, err)
	require.Nil(t, r)
}

func mustLabels(t *testing.T, s string) []Label {
	t.Helper()
	labels, err := ByteInput.ToLabels([]byte(s))
	require.NoError(t, err)
	return labels
}

func labelsToBytes(labels []Label) []byte {
	out := make([]byte, len(labels))
	for i, l := range labels {
		out[i] = byte(l)
	}
	return out
}
