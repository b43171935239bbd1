package index

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTermDict(t *testing.T, terms []string) *TermDictionary {
	t.Helper()
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)

	tb := NewTermDictionaryBuilder()
	for i, term := range sorted {
		require.NoError(t, tb.Add(term, int64(i*100)))
	}
	d, err := tb.Build()
	require.NoError(t, err)
	return d
}

func TestTermDictionary_LookupExact(t *testing.T) {
	d := buildTermDict(t, []string{"ant", "ape", "apple", "banana"})

	offset, found, err := d.Lookup("apple")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(200), offset)

	_, found, err = d.Lookup("grape")
	require.NoError(t, err)
	require.False(t, found)
}

func TestTermDictionary_CompletePrefix(t *testing.T) {
	d := buildTermDict(t, []string{"ant", "ape", "apple", "banana"})

	results, err := d.Complete("ap", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "ape", results[0].Term)
	require.Equal(t, "apple", results[1].Term)
}

func TestTermDictionary_CompleteRespectsLimit(t *testing.T) {
	d := buildTermDict(t, []string{"cat", "car", "cart", "card", "care"})

	results, err := d.Complete("car", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestTermDictionary_CompleteNoMatches(t *testing.T) {
	d := buildTermDict(t, []string{"ant", "ape"})

	results, err := d.Complete("zzz", 10)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestTermDictionary_EmptyBuilder(t *testing.T) {
	tb := NewTermDictionaryBuilder()
	d, err := tb.Build()
	require.NoError(t, err)
	require.True(t, d.Empty())

	_, found, err := d.Lookup("anything")
	require.NoError(t, err)
	require.False(t, found)
}
