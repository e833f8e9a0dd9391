package search

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/scribe/core"
)

// Default ranking configuration.
const (
	DefaultMinScore      = 0.3
	DefaultMaxResults    = 50
	DefaultTitleWeight   = 0.8
	DefaultContentWeight = 0.6
	DefaultRecencyWeight = 0.05
)

// Engine scores and ranks documents against free-text queries.
// It is immutable after construction and safe for concurrent use; every
// call operates only on its arguments.
type Engine struct {
	minScore       float64
	maxResults     int
	categoryFilter string
	titleWeight    float64
	contentWeight  float64
	recencyWeight  float64
	now            func() time.Time
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMinScore sets the minimum final score a result must reach.
// Default is DefaultMinScore.
func WithMinScore(score float64) Option {
	return func(e *Engine) error {
		if score < 0 || score > 1 {
			return ErrInvalidMinScore
		}
		e.minScore = score
		return nil
	}
}

// WithMaxResults caps the number of returned results.
// Default is DefaultMaxResults.
func WithMaxResults(limit int) Option {
	return func(e *Engine) error {
		if limit <= 0 {
			return ErrInvalidMaxResults
		}
		e.maxResults = limit
		return nil
	}
}

// WithCategoryFilter restricts results to documents whose category equals
// filter exactly. An empty filter matches every document.
func WithCategoryFilter(filter string) Option {
	return func(e *Engine) error {
		e.categoryFilter = filter
		return nil
	}
}

// WithFieldWeights sets the title and content weights used by the
// similarity sub-score. Defaults are DefaultTitleWeight and
// DefaultContentWeight.
func WithFieldWeights(title, content float64) Option {
	return func(e *Engine) error {
		if title < 0 || title > 1 || content < 0 || content > 1 {
			return ErrInvalidFieldWeight
		}
		e.titleWeight = title
		e.contentWeight = content
		return nil
	}
}

// WithRecencyWeight sets the cap on the recency contribution.
// Default is DefaultRecencyWeight.
func WithRecencyWeight(weight float64) Option {
	return func(e *Engine) error {
		if weight < 0 || weight > 1 {
			return ErrInvalidFieldWeight
		}
		e.recencyWeight = weight
		return nil
	}
}

// WithClock sets the time source for recency scoring. Tests pin this to a
// fixed instant to make results reproducible. Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			now = time.Now
		}
		e.now = now
		return nil
	}
}

// NewEngine creates a search engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		minScore:      DefaultMinScore,
		maxResults:    DefaultMaxResults,
		titleWeight:   DefaultTitleWeight,
		contentWeight: DefaultContentWeight,
		recencyWeight: DefaultRecencyWeight,
		now:           time.Now,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search ranks docs against query and returns the results best-first.
// Ties on the final score break by descending document ID, then by title,
// so ordering never depends on input order.
//
// A query that parses as a positive integer and matches a document ID
// short-circuits to that single document with a perfect score, ignoring
// the category filter and every other candidate.
func (e *Engine) Search(query string, docs []*core.Document) []*core.SearchResult {
	return e.SearchWithMonitor(query, docs, nil)
}

// SearchWithMonitor ranks docs against query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(query string, docs []*core.Document, monitor SearchMonitor) []*core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	q := strings.TrimSpace(query)

	// ID lookup is authoritative and exclusive.
	if doc := lookupByID(q, docs); doc != nil {
		monitor.IDShortcut(doc)
		result := &core.SearchResult{Document: doc, Score: perfectScore()}
		result.MatchedFields, result.Highlights = annotate(q, doc)

		results := []*core.SearchResult{result}
		monitor.Finish(results)
		return results
	}

	results := make([]*core.SearchResult, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if e.categoryFilter != "" && doc.Category != e.categoryFilter {
			monitor.CategorySkipped(doc)
			continue
		}

		score := e.Score(q, doc)
		if score.Final < e.minScore {
			monitor.Rejected(doc, score)
			continue
		}
		monitor.Scored(doc, score)

		result := &core.SearchResult{Document: doc, Score: score}
		result.MatchedFields, result.Highlights = annotate(q, doc)
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score.Final != b.Score.Final {
			return a.Score.Final > b.Score.Final
		}
		if a.Document.Id != b.Document.Id {
			return a.Document.Id > b.Document.Id
		}
		return a.Document.Title < b.Document.Title
	})

	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}

	monitor.Finish(results)
	return results
}

// lookupByID resolves a numeric query to the document carrying that ID.
// Returns nil when the query is not a positive integer or no document
// matches.
func lookupByID(query string, docs []*core.Document) *core.Document {
	id, err := strconv.Atoi(query)
	if err != nil || id <= 0 {
		return nil
	}

	for _, doc := range docs {
		if doc != nil && doc.Id == core.ID(id) {
			return doc
		}
	}

	return nil
}

// perfectScore is the score attached to an authoritative ID match.
func perfectScore() core.SearchScore {
	return core.SearchScore{
		ExactMatch:       1.0,
		Semantic:         1.0,
		KeywordRelevance: 1.0,
		Final:            1.0,
	}
}
