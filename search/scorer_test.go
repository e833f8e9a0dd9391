package search

import (
	"testing"
	"time"

	"github.com/poiesic/scribe/core"
	"github.com/stretchr/testify/assert"
)

func TestScore_ExactMatchBranches(t *testing.T) {
	engine := testEngine(t)

	t.Run("exact title", func(t *testing.T) {
		doc := &core.Document{Title: "Worker Pool", Content: "body", LastUpdated: testNow}
		score := engine.Score("worker pool", doc)
		assert.Equal(t, exactTitleScore, score.ExactMatch)
	})

	t.Run("exact category", func(t *testing.T) {
		doc := &core.Document{Title: "Something Else", Content: "body", Category: "Go", LastUpdated: testNow}
		score := engine.Score("go", doc)
		assert.Equal(t, exactCategoryScore, score.ExactMatch)
	})

	t.Run("content substring", func(t *testing.T) {
		doc := &core.Document{Title: "Something Else", Content: "uses a worker pool inside", LastUpdated: testNow}
		score := engine.Score("worker pool", doc)
		assert.Equal(t, exactContentScore, score.ExactMatch)
	})

	t.Run("title wins over category and content", func(t *testing.T) {
		doc := &core.Document{
			Title:       "Go",
			Content:     "go go go",
			Category:    "go",
			LastUpdated: testNow,
		}
		score := engine.Score("go", doc)
		assert.Equal(t, exactTitleScore, score.ExactMatch)
	})

	t.Run("no match", func(t *testing.T) {
		doc := &core.Document{Title: "Alpha", Content: "beta", LastUpdated: testNow}
		score := engine.Score("gamma", doc)
		assert.Equal(t, 0.0, score.ExactMatch)
	})
}

func TestScore_KeywordsFieldWeighted(t *testing.T) {
	engine := testEngine(t)

	tagged := &core.Document{
		Title:       "Deployment Notes",
		Content:     "steps for the release",
		Keywords:    []string{"kubernetes", "rollout"},
		LastUpdated: testNow,
	}
	untagged := &core.Document{
		Title:       "Deployment Notes",
		Content:     "steps for the release",
		LastUpdated: testNow,
	}

	withTag := engine.Score("kubernetes", tagged)
	withoutTag := engine.Score("kubernetes", untagged)
	assert.Greater(t, withTag.KeywordRelevance, withoutTag.KeywordRelevance)
	assert.Equal(t, 0.0, withoutTag.KeywordRelevance)
}

func TestScore_WholeWordBeatsSubstring(t *testing.T) {
	engine := testEngine(t)

	whole := &core.Document{Title: "The cache layer", Content: "x", LastUpdated: testNow}
	partial := &core.Document{Title: "The cached layer", Content: "x", LastUpdated: testNow}

	wholeScore := engine.Score("cache", whole)
	partialScore := engine.Score("cache", partial)
	assert.Greater(t, wholeScore.KeywordRelevance, partialScore.KeywordRelevance)
}

func TestScore_CategoryBoost(t *testing.T) {
	engine := testEngine(t)

	exact := &core.Document{Title: "T", Content: "c", Category: "testing", LastUpdated: testNow}
	partial := &core.Document{Title: "T", Content: "c", Category: "integration-testing", LastUpdated: testNow}
	absent := &core.Document{Title: "T", Content: "c", LastUpdated: testNow}

	assert.Equal(t, categoryExactBoost, engine.Score("testing", exact).CategoryBoost)
	assert.Equal(t, categoryPartialBoost, engine.Score("testing", partial).CategoryBoost)
	assert.Equal(t, 0.0, engine.Score("testing", absent).CategoryBoost)
}

func TestScore_RecencyDecay(t *testing.T) {
	engine := testEngine(t)

	fresh := &core.Document{Title: "T", Content: "c", LastUpdated: testNow}
	stale := &core.Document{Title: "T", Content: "c", LastUpdated: testNow.Add(-90 * 24 * time.Hour)}
	unknown := &core.Document{Title: "T", Content: "c"}

	freshScore := engine.Score("query", fresh)
	staleScore := engine.Score("query", stale)
	unknownScore := engine.Score("query", unknown)

	assert.InDelta(t, DefaultRecencyWeight, freshScore.Recency, 1e-9)
	assert.Less(t, staleScore.Recency, freshScore.Recency)
	assert.Greater(t, staleScore.Recency, 0.0)
	assert.Equal(t, 0.0, unknownScore.Recency)
}

func TestScore_RecencyNeverDominates(t *testing.T) {
	engine := testEngine(t)

	// A brand-new document with zero lexical overlap must stay below the
	// default result threshold on recency alone.
	doc := &core.Document{Title: "Grocery List", Content: "milk eggs", LastUpdated: testNow}
	score := engine.Score("kubernetes rollout", doc)
	assert.Less(t, score.Final, DefaultMinScore)
}

func TestScore_FieldBoostShortTitle(t *testing.T) {
	engine := testEngine(t)

	short := &core.Document{Title: "Hooks", Content: "c", LastUpdated: testNow}
	long := &core.Document{
		Title:       "Hooks and a very verbose description of everything they have ever been used for in practice",
		Content:     "c",
		LastUpdated: testNow,
	}

	shortScore := engine.Score("hooks", short)
	longScore := engine.Score("hooks", long)
	assert.Greater(t, shortScore.FieldBoost, longScore.FieldBoost)
}

func TestScore_SingleCharQueryNoBigramBoost(t *testing.T) {
	assert.Equal(t, 0.0, bigramOverlap("a", "anything at all"))
}

func TestScore_CorroborationCapped(t *testing.T) {
	engine := testEngine(t)

	// Every signal fires at once; the final score must still cap at 1.0.
	doc := &core.Document{
		Id:          1,
		Title:       "React Hook Pattern",
		Content:     "react hook pattern everywhere",
		Category:    "react hook pattern",
		Keywords:    []string{"react", "hook", "pattern"},
		LastUpdated: testNow,
	}

	score := engine.Score("react hook pattern", doc)
	assert.Equal(t, 1.0, score.Final)
}

func TestScore_EmptyQuery(t *testing.T) {
	engine := testEngine(t)

	doc := &core.Document{Title: "Anything", Content: "body text", Category: "go", LastUpdated: testNow}

	// Defined but low-signal: keyword relevance collapses to zero, the
	// remaining signals still produce a bounded score.
	for _, query := range []string{"", "   ", "\t\n"} {
		score := engine.Score(query, doc)
		assert.Equal(t, 0.0, score.KeywordRelevance, "query %q", query)
		assert.GreaterOrEqual(t, score.Final, 0.0)
		assert.LessOrEqual(t, score.Final, 1.0)
	}
}

func TestContainsWholeWord(t *testing.T) {
	tests := []struct {
		text string
		word string
		want bool
	}{
		{"the cache layer", "cache", true},
		{"the cached layer", "cache", false},
		{"cache", "cache", true},
		{"cache first", "cache", true},
		{"first cache", "cache", true},
		{"(cache)", "cache", true},
		{"pre_cache", "cache", false},
		{"", "cache", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		got := containsWholeWord(tt.text, tt.word)
		assert.Equal(t, tt.want, got, "containsWholeWord(%q, %q)", tt.text, tt.word)
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "abc", prefix("abc", 200))
	assert.Equal(t, "ab", prefix("abcdef", 2))
	assert.Equal(t, "", prefix("", 200))
}
