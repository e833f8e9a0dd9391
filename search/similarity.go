package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// containmentDiscount keeps keyword hits slightly below a genuine fuzzy
	// match of the same strength, while still letting them dominate on long
	// text where string distance degrades.
	containmentDiscount = 0.8

	jaroBoostThreshold = 0.7
	jaroPrefixSize     = 4
)

// Similarity scores how closely a query resembles a text field, in [0, 1].
//
// It takes the maximum of a prefix-weighted string distance (Jaro-Winkler)
// and a discounted keyword-containment score, both over lowercased input.
// If the distance computation fails it falls back to containment alone;
// Similarity never fails.
func Similarity(query, text string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	containment := keywordContainment(q, t)

	distance, err := jaroWinkler(q, t)
	if err != nil {
		return containment
	}

	return math.Max(distance, containmentDiscount*containment)
}

// jaroWinkler wraps the string-distance computation with a recover guard so
// a misbehaving input can never take down a search call.
func jaroWinkler(a, b string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
			err = fmt.Errorf("%w: %v", errSimilarityUnavailable, r)
		}
	}()

	return smetrics.JaroWinkler(a, b, jaroBoostThreshold, jaroPrefixSize), nil
}

// keywordContainment returns the fraction of query words that appear as
// substrings of text. Both inputs must already be lowercased.
func keywordContainment(query, text string) float64 {
	words := strings.Fields(query)
	if len(words) == 0 {
		return 0
	}

	found := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			found++
		}
	}

	return float64(found) / float64(len(words))
}
