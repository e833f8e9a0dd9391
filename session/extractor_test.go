package session

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/store/markdown"
)

func transcript(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n"))
}

func TestExtract(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)

	t.Run("collects assistant sections", func(t *testing.T) {
		entries, err := e.Extract(transcript(
			`{"role":"user","content":"# Not Yours\n\nuser text"}`,
			`{"role":"assistant","content":"# Retry Strategy\n\nUse exponential backoff.\n\n# Timeouts\n\nAlways set a deadline."}`,
		))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "Retry Strategy", entries[0].Title)
		assert.Contains(t, entries[0].Content, "exponential backoff")
		assert.Equal(t, "Timeouts", entries[1].Title)
	})

	t.Run("skips malformed lines", func(t *testing.T) {
		entries, err := e.Extract(transcript(
			`not json at all`,
			`{"role":"assistant","content":"# Caching\n\nPrefer LRU."}`,
			`{"role":`,
		))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Caching", entries[0].Title)
	})

	t.Run("deduplicates repeated sections", func(t *testing.T) {
		entries, err := e.Extract(transcript(
			`{"role":"assistant","content":"# Caching\n\nPrefer LRU."}`,
			`{"role":"assistant","content":"# Caching\n\nprefer   lru."}`,
		))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("drops text before first heading", func(t *testing.T) {
		entries, err := e.Extract(transcript(
			`{"role":"assistant","content":"Preamble chatter.\n\n# Kept\n\nBody."}`,
		))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Kept", entries[0].Title)
	})

	t.Run("drops sections with empty bodies", func(t *testing.T) {
		entries, err := e.Extract(transcript(
			`{"role":"assistant","content":"# Empty\n\n# Full\n\nSomething."}`,
		))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Full", entries[0].Title)
	})

	t.Run("empty transcript", func(t *testing.T) {
		entries, err := e.Extract(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestSplitSections(t *testing.T) {
	sections := splitSections("# A\n\nfirst\n\n## B\n\nsecond")
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].Title)
	assert.Equal(t, "# A\n\nfirst\n", sections[0].Content)
	assert.Equal(t, "B", sections[1].Title)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, fingerprint("Prefer LRU."), fingerprint("prefer   lru."))
	assert.NotEqual(t, fingerprint("Prefer LRU."), fingerprint("Prefer FIFO."))
}

func TestSaveEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, markdown.Init(dir))

	docStore, err := markdown.NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = docStore.Close() })

	e, err := NewExtractor()
	require.NoError(t, err)

	created, err := e.SaveEntries(context.Background(), docStore, []Entry{
		{Title: "Retry Strategy", Content: "# Retry Strategy\n\nUse exponential backoff.\n"},
		{Title: "Timeouts", Content: "# Timeouts\n\nAlways set a deadline.\n"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	docs, err := docStore.ListDocuments(context.Background(), core.DocTypeKnowledge)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Retry Strategy", docs[0].Title)
	assert.Equal(t, "session", docs[0].Category)
	assert.Equal(t, core.ID(2), docs[1].Id)
}
