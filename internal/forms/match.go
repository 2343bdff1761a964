package forms

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the default similarity score (0-100) a known-data key
// must reach to be accepted as a match for a field name.
const DefaultThreshold = 80

// Pair is one field-name/value entry of the caller-supplied known data.
type Pair struct {
	Key   string
	Value string
}

// KnownData is an ordered, read-only set of field-name/value pairs supplied
// by the caller for one fill pass. Order is preserved so that equal-score
// fuzzy matches break ties deterministically on the first key provided.
type KnownData struct {
	pairs      []Pair
	resumePath string
}

// NewKnownData builds KnownData from ordered pairs and an optional resume
// file path used for file/resume fields.
func NewKnownData(pairs []Pair, resumePath string) KnownData {
	return KnownData{pairs: pairs, resumePath: resumePath}
}

// Len returns the number of key/value pairs.
func (d KnownData) Len() int { return len(d.pairs) }

// Pairs returns the pairs in caller-supplied order.
func (d KnownData) Pairs() []Pair { return d.pairs }

// ResumePath returns the resume file path, or "" if none was supplied.
func (d KnownData) ResumePath() string { return d.resumePath }

// Matcher resolves field names against known data by fuzzy similarity.
type Matcher struct {
	threshold int
}

// NewMatcher creates a Matcher with the given acceptance threshold (0-100).
func NewMatcher(threshold int) *Matcher {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured acceptance threshold.
func (m *Matcher) Threshold() int { return m.threshold }

// Match returns the value of the best-scoring known-data key for fieldName
// together with its similarity score. Scoring uses case-folded partial
// ratio; an exact key scores 100. When no key reaches the threshold, Match
// returns ErrNoMatch, which signals the caller to fall back to generation.
//
// Resume and file fields are special-cased: when the known data carries a
// resume path, any field name mentioning "resume" or "file" resolves to it
// directly.
func (m *Matcher) Match(fieldName string, data KnownData) (value string, score int, err error) {
	lowered := strings.ToLower(fieldName)

	if data.resumePath != "" &&
		(strings.Contains(lowered, "resume") || strings.Contains(lowered, "file")) {
		return data.resumePath, 100, nil
	}

	bestScore := -1
	bestValue := ""
	for _, pair := range data.pairs {
		s := fuzzy.PartialRatio(lowered, strings.ToLower(pair.Key))
		if s > bestScore {
			bestScore = s
			bestValue = pair.Value
		}
	}

	if bestScore < m.threshold {
		return "", bestScore, ErrNoMatch
	}
	return bestValue, bestScore, nil
}
