package merge3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potools/msgmerge3/internal/catalog"
)

func single(id, translation string) *catalog.Catalog {
	return &catalog.Catalog{Domains: []*catalog.Domain{
		{Messages: []*catalog.Message{{ID: id, Translation: []byte(translation)}}},
	}}
}

func empty() *catalog.Catalog {
	return &catalog.Catalog{Domains: []*catalog.Domain{{}}}
}

func messages(cat *catalog.Catalog) []*catalog.Message {
	if len(cat.Domains) == 0 {
		return nil
	}
	return cat.Domains[0].Messages
}

var ignoreUnexported = cmpopts.IgnoreUnexported(catalog.Message{})

func TestS1PureCopy(t *testing.T) {
	origin := single("hello", "bonjour")
	a := single("hello", "bonjour")
	b := single("hello", "bonjour")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)
	assert.False(t, result.HasMerges)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "bonjour", string(got[0].Translation))
}

func TestS2BAdds(t *testing.T) {
	origin := empty()
	a := empty()
	b := single("cat", "chat")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "cat", got[0].ID)
	assert.Equal(t, "chat", string(got[0].Translation))
}

func TestS3BDeletesADoesNotDiverge(t *testing.T) {
	origin := single("x", "y")
	a := single("x", "y")
	b := empty()

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
	assert.Empty(t, got[0].Translation)
}

func TestS4BDeletesADiverges(t *testing.T) {
	origin := single("x", "y")
	a := single("x", "Y!")
	b := empty()

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "Y!", string(got[0].Translation))
}

func TestS5TrueConflict(t *testing.T) {
	origin := single("k", "o")
	a := single("k", "a")
	b := single("k", "b")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)
	assert.True(t, result.HasMerges)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsFuzzy)
	assert.Contains(t, string(got[0].Translation), "a")
	assert.Contains(t, string(got[0].Translation), "b")
	assert.Contains(t, string(got[0].Translation), "#-#-#-#-#")
}

func TestS6FuzzyInAConfidentInB(t *testing.T) {
	origin := single("k", "o")
	a := single("k", "a")
	a.Domains[0].Messages[0].IsFuzzy = true
	b := single("k", "b")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)
	assert.False(t, result.HasMerges)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "b", string(got[0].Translation))
	assert.False(t, got[0].IsFuzzy)
}

func TestS7HeaderReconciliation(t *testing.T) {
	origin := empty()
	a := &catalog.Catalog{Domains: []*catalog.Domain{{Messages: []*catalog.Message{{
		ID:          catalog.HeaderID,
		Translation: []byte("PO-Revision-Date: 2010-01-01\n"),
		Comments:    []string{"Copyright (C) 2009 Alice"},
	}}}}}
	b := &catalog.Catalog{Domains: []*catalog.Domain{{Messages: []*catalog.Message{{
		ID:          catalog.HeaderID,
		Translation: []byte("PO-Revision-Date: 2011-06-15\n"),
		Comments:    []string{"Copyright (C) 2009 Alice", "Copyright (C) 2011 Bob"},
	}}}}}

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	assert.Equal(t, string(b.Domains[0].Messages[0].Translation), string(got[0].Translation))
	assert.Contains(t, got[0].Comments, "Copyright (C) 2011 Bob")
}

func TestInvariantNoMessageHasAlternativesAfterMerge(t *testing.T) {
	origin := single("k", "o")
	a := single("k", "a")
	b := single("k", "b")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	for _, d := range result.Catalog.Domains {
		for _, m := range d.Messages {
			assert.Empty(t, m.Alternatives())
		}
	}
}

func TestInvariantKeysUniqueWithinDomain(t *testing.T) {
	origin := &catalog.Catalog{Domains: []*catalog.Domain{{}}}
	a := &catalog.Catalog{Domains: []*catalog.Domain{{Messages: []*catalog.Message{
		{ID: "dup", Translation: []byte("one")},
	}}}}
	b := &catalog.Catalog{Domains: []*catalog.Domain{{Messages: []*catalog.Message{
		{ID: "dup", Translation: []byte("one")},
		{ID: "other", Translation: []byte("two")},
	}}}}

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range messages(result.Catalog) {
		key := m.Context + "\x00" + m.ID
		require.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func TestPass2SkipsEntryIdenticalToOrigin(t *testing.T) {
	origin := single("stale", "same")
	a := empty()
	b := single("stale", "same")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)
	assert.Empty(t, messages(result.Catalog))
}

func TestConcatenateTranslationsInterleavesPluralForms(t *testing.T) {
	alts := []catalog.Alternative{
		{ID: "#-#-#-#-#  a.po  #-#-#-#-#", Translation: []byte("one-a\x00many-a")},
		{ID: "#-#-#-#-#  b.po  #-#-#-#-#", Translation: []byte("one-b\x00many-b")},
	}
	out := concatenateTranslations(alts)
	s := string(out)
	assert.Contains(t, s, "one-a")
	assert.Contains(t, s, "one-b")
	assert.Contains(t, s, "many-a")
	assert.Contains(t, s, "many-b")
}

func TestReduceTranslationsAllEqual(t *testing.T) {
	alts := []catalog.Alternative{
		{ID: "x", Translation: []byte("same")},
		{ID: "y", Translation: []byte("same")},
	}
	got, ok := reduceTranslations(alts)
	require.True(t, ok)
	assert.Equal(t, "same", string(got))
}

func TestReduceCommentsConcatenatesWhenDifferent(t *testing.T) {
	alts := []catalog.Alternative{
		{ID: "markerA", Comments: []string{"from a"}},
		{ID: "markerB", Comments: []string{"from b"}},
	}
	got, ok := reduceLines(alts, func(a catalog.Alternative) []string { return a.Comments })
	assert.False(t, ok)
	assert.Nil(t, got)

	concat := concatenateLines(alts, func(a catalog.Alternative) []string { return a.Comments })
	assert.Equal(t, []string{"markerA", "from a", "markerB", "from b"}, concat)
}

func TestMergeCatalogHasNoSharedMemoryWithB(t *testing.T) {
	origin := single("k", "o")
	a := single("k", "o")
	b := single("k", "b")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	got := messages(result.Catalog)
	require.Len(t, got, 1)
	got[0].Translation[0] = 'X'
	assert.Equal(t, "b", string(b.Domains[0].Messages[0].Translation))
}

func TestMergeAddsBOnlyDomain(t *testing.T) {
	origin := &catalog.Catalog{}
	a := &catalog.Catalog{Domains: []*catalog.Domain{{Name: "main"}}}
	b := &catalog.Catalog{Domains: []*catalog.Domain{
		{Name: "main"},
		{Name: "extra", Messages: []*catalog.Message{{ID: "x", Translation: []byte("y")}}},
	}}

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	require.Len(t, result.Catalog.Domains, 2)
	assert.Equal(t, "main", result.Catalog.Domains[0].Name)
	assert.Equal(t, "extra", result.Catalog.Domains[1].Name)
}

func TestMergeDropsOriginOnlyDomain(t *testing.T) {
	origin := &catalog.Catalog{Domains: []*catalog.Domain{{Name: "gone"}}}
	a := &catalog.Catalog{Domains: []*catalog.Domain{{Name: "main"}}}
	b := &catalog.Catalog{Domains: []*catalog.Domain{{Name: "main"}}}

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	require.Len(t, result.Catalog.Domains, 1)
	assert.Equal(t, "main", result.Catalog.Domains[0].Name)
}

func diffCatalogs(t *testing.T, want, got *catalog.Catalog) {
	t.Helper()
	if diff := cmp.Diff(want, got, ignoreUnexported); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeIdenticalCatalogsEqualsAByteForByte(t *testing.T) {
	origin := single("hello", "bonjour")
	a := single("hello", "bonjour")
	b := single("hello", "bonjour")

	result, err := Merge(a, b, origin, "a.po", "b.po")
	require.NoError(t, err)

	want := single("hello", "bonjour")
	diffCatalogs(t, want, result.Catalog)
}
