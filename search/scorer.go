package search

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/scribe/core"
)

const (
	exactTitleScore    = 0.95
	exactCategoryScore = 0.8
	exactContentScore  = 0.7

	// Weights of the sub-scores in the final combination.
	exactWeight    = 0.4
	semanticWeight = 0.25
	keywordWeight  = 0.2
	categoryWeight = 0.1

	// Declared keywords are explicit author intent, so they outweigh the
	// derived fields in keyword relevance.
	keywordsFieldWeight = 2.5
	wholeWordScore      = 1.0
	substringScore      = 0.7
	completenessFactor  = 0.2

	categoryExactBoost   = 0.2
	categoryPartialBoost = 0.1

	recencyDecayDays = 30.0

	// A document matching on two independent signals is more trustworthy
	// than one strong signal alone.
	corroborationBonus = 1.1
	corroborationFloor = 0.1

	// Only the opening of the content feeds the similarity metric: it bounds
	// cost and favors titles and introductions.
	contentPrefixLen = 200
)

// Score computes the multi-factor score of one document against a query.
// The query is lowercased and trimmed internally; documents are not mutated.
func (e *Engine) Score(query string, doc *core.Document) core.SearchScore {
	q := strings.ToLower(strings.TrimSpace(query))
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(doc.Content)
	category := strings.ToLower(doc.Category)

	score := core.SearchScore{
		ExactMatch:       exactMatch(q, title, content, category),
		Semantic:         e.semantic(q, title, content),
		KeywordRelevance: keywordRelevance(q, title, content, category, doc.Keywords),
		CategoryBoost:    categoryBoost(q, category),
		Recency:          e.recency(doc.LastUpdated),
		FieldBoost:       fieldBoost(q, title),
	}

	base := exactWeight*score.ExactMatch +
		semanticWeight*score.Semantic +
		keywordWeight*score.KeywordRelevance +
		categoryWeight*score.CategoryBoost +
		score.Recency +
		score.FieldBoost

	multiplier := 1.0
	if corroborated(score) {
		multiplier = corroborationBonus
	}

	score.Final = math.Min(1.0, base*multiplier)
	return score
}

// exactMatch checks query equality against title and category and substring
// containment in content. Title wins over category wins over content.
func exactMatch(q, title, content, category string) float64 {
	switch {
	case title == q:
		return exactTitleScore
	case category != "" && category == q:
		return exactCategoryScore
	case strings.Contains(content, q):
		return exactContentScore
	default:
		return 0
	}
}

// semantic compares the query against the title and the opening of the
// content, each weighted by its field weight, and keeps the stronger one.
func (e *Engine) semantic(q, title, content string) float64 {
	titleScore := Similarity(q, title) * e.titleWeight
	contentScore := Similarity(q, prefix(content, contentPrefixLen)) * e.contentWeight
	return math.Max(titleScore, contentScore)
}

// keywordRelevance measures how many query words appear across four fields,
// with whole-word matches worth more than substring matches, then applies a
// completeness multiplier rewarding queries matched broadly.
func keywordRelevance(q, title, content, category string, keywords []string) float64 {
	words := strings.Fields(q)
	if len(words) == 0 {
		return 0
	}

	fields := []struct {
		text   string
		weight float64
	}{
		{title, 1.0},
		{content, 1.0},
		{category, 1.0},
		{strings.ToLower(strings.Join(keywords, " ")), keywordsFieldWeight},
	}

	var weighted float64
	matched := 0
	for _, field := range fields {
		var fieldScore float64
		for _, word := range words {
			switch {
			case containsWholeWord(field.text, word):
				fieldScore += wholeWordScore
				matched++
			case strings.Contains(field.text, word):
				fieldScore += substringScore
				matched++
			}
		}
		weighted += (fieldScore / float64(len(words))) * field.weight
	}

	score := weighted / float64(len(fields))
	matchRatio := float64(matched) / float64(len(words)*len(fields))
	return score * (1 + completenessFactor*matchRatio)
}

// categoryBoost rewards queries aimed at a document's category.
func categoryBoost(q, category string) float64 {
	if category == "" {
		return 0
	}
	switch {
	case category == q:
		return categoryExactBoost
	case strings.Contains(category, q):
		return categoryPartialBoost
	default:
		return 0
	}
}

// recency decays exponentially with document age. The weight caps its
// contribution so freshness breaks ties but never outranks relevance.
func (e *Engine) recency(updated time.Time) float64 {
	if updated.IsZero() {
		return 0
	}

	days := e.now().Sub(updated).Hours() / 24
	if days < 0 {
		days = 0
	}

	return math.Exp(-days/recencyDecayDays) * e.recencyWeight
}

// fieldBoost rewards short titles containing the query (higher specificity)
// and character-level bigram overlap between query and title.
func fieldBoost(q, title string) float64 {
	var boost float64

	if q != "" && strings.Contains(title, q) {
		titleLen := float64(utf8.RuneCountInString(title))
		boost += math.Max(0.1, 1-titleLen/100) * 0.2
	}

	boost += bigramOverlap(q, title) * 0.1
	return boost
}

// corroborated reports whether at least two headline signals independently
// exceed the corroboration floor.
func corroborated(s core.SearchScore) bool {
	hits := 0
	for _, v := range []float64{s.ExactMatch, s.Semantic, s.KeywordRelevance} {
		if v > corroborationFloor {
			hits++
		}
	}
	return hits >= 2
}

// bigramOverlap returns the fraction of the query's 2-character shingles
// present among the title's shingles. Queries shorter than 2 runes score 0.
func bigramOverlap(q, title string) float64 {
	queryGrams := bigrams(q)
	if len(queryGrams) == 0 {
		return 0
	}

	titleGrams := make(map[string]bool)
	for _, g := range bigrams(title) {
		titleGrams[g] = true
	}

	found := 0
	for _, g := range queryGrams {
		if titleGrams[g] {
			found++
		}
	}

	return float64(found) / float64(len(queryGrams))
}

func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}

	grams := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		grams = append(grams, string(runes[i:i+2]))
	}
	return grams
}

// containsWholeWord reports whether word occurs in text delimited by
// non-word characters on both sides.
func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}

	for start := 0; start <= len(text)-len(word); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start

		before, _ := utf8.DecodeLastRuneInString(text[:i])
		after, _ := utf8.DecodeRuneInString(text[i+len(word):])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}

		start = i + 1
	}

	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
