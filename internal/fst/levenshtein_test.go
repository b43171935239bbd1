package fst

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func fuzzyKeys(t *testing.T, results []Result[int64]) []string {
	t.Helper()
	got := make([]string, 0, len(results))
	for _, r := range results {
		got = append(got, string(labelsToBytes(r.Labels)))
	}
	sort.Strings(got)
	return got
}

func TestFuzzySearch_ExactMatchWithinZeroDistance(t *testing.T) {
	f := buildByteInt64(t, map[string]int64{"kitten": 1, "sitting": 2, "kitchen": 3})

	results, err := FuzzySearch[int64](f, []byte("kitten"), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"kitten"}, fuzzyKeys(t, results))
}

func TestFuzzySearch_FindsKeysWithinEditDistance(t *testing.T) {
	f := buildByteInt64(t, map[string]int64{"kitten": 1, "sitting": 2, "kitchen": 3, "bitten": 4})

	// "kitten" -> "sitting" is edit distance 3 (classic example); allow up to
	// distance 2 and expect only the genuinely close neighbors.
	results, err := FuzzySearch[int64](f, []byte("kitten"), 2)
	require.NoError(t, err)
	got := fuzzyKeys(t, results)
	require.Contains(t, got, "kitten")
	require.Contains(t, got, "bitten")
	require.NotContains(t, got, "sitting")
}

func TestFuzzySearch_NoMatchesWithinDistanceReturnsEmpty(t *testing.T) {
	f := buildByteInt64(t, map[string]int64{"apple": 1, "orange": 2})

	results, err := FuzzySearch[int64](f, []byte("zzz"), 1)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestFuzzySearch_PreservesAccumulatedOutput(t *testing.T) {
	f := buildByteInt64(t, map[string]int64{"cat": 42})

	results, err := FuzzySearch[int64](f, []byte("cat"), 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(42), results[0].Output)
}

func TestFuzzySearch_MatchesEmptyKey(t *testing.T) {
	b := NewMinimizingBuilder[int64](Int64Outputs{})
	require.NoError(t, b.Add([]byte(""), 99))
	f, err := b.Finish()
	require.NoError(t, err)
	require.NotNil(t, f)

	results, err := FuzzySearch[int64](f, []byte(""), 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(99), results[0].Output)
}
