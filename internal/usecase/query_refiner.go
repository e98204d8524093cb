package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopsearch/backend/internal/domain"
)

// filterKeywords indicate filtering criteria rather than product type.
// A whole-word occurrence of any of them truncates the query from that
// point to the end of the string.
var filterKeywords = []string{
	"free shipping",
	"prime shipping",
	"fast delivery",
	"same day delivery",
	"next day shipping",
	"next day",
	"same day",
	"available now",
	"less than",
	"more than",
	"best seller",
	"bestseller",
	"top rated",
	"highly rated",
	"best rated",
	"in stock",
	"on sale",
	"on deal",
	"available",
	"discount",
	"between",
	"expensive",
	"premium",
	"reviews",
	"under",
	"cheap",
	"stars",
	"prime",
	"deal",
	"best",
	"over",
}

// prefixFilters are quality/price adjectives removed from the beginning of a
// query. Longest-match-first so "best rated" is tried before "best".
var prefixFilters = []string{
	"best rated",
	"top rated",
	"highly rated",
	"best seller",
	"bestseller",
	"premium",
	"budget",
	"cheap",
	"expensive",
	"best",
	"5 stars",
	"4 stars",
	"5 star",
	"4 star",
}

// multiTopicSeparators indicate multiple product topics; checked in priority
// order, first match wins
var multiTopicSeparators = []string{
	" and ",
	" or ",
	" plus ",
	",",
}

// withAccessoryKeywords mark a "with" clause as an accessory/filter spec
// rather than a genuine product modifier
var withAccessoryKeywords = []string{
	"case", "cover", "charger", "cable", "adapter", "memory", "storage",
	"ram", "gb", "tb", "shipping", "delivery", "prime", "free", "discount",
	"rgb",
}

// Package-level compiled patterns for performance
var (
	withAccessoryPattern = regexp.MustCompile(
		`(?i)\b(` + strings.Join(withAccessoryKeywords, "|") + `)\b`,
	)
	alphanumericPattern   = regexp.MustCompile(`[a-zA-Z0-9]`)
	filterKeywordPatterns = compileFilterKeywordPatterns()
)

func compileFilterKeywordPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(filterKeywords))
	for _, keyword := range filterKeywords {
		// Leading whitespace is required so a keyword that IS the whole
		// query ("prime", "deal") survives refinement.
		patterns = append(patterns, regexp.MustCompile(
			`(?i)\s+`+regexp.QuoteMeta(keyword)+`\b`,
		))
	}
	return patterns
}

// ValidationResult reports whether a raw query is usable for product search
type ValidationResult struct {
	IsValid      bool   `json:"isValid"`
	Reason       string `json:"reason"`
	RefinedQuery string `json:"refinedQuery,omitempty"`
}

// RefineQuery rewrites a raw search query into a short, single-topic phrase
// suitable for the product search provider.
//
// Stages, in order: trim, strip leading quality/price adjectives, cut at the
// first multi-topic separator, drop accessory "with" clauses, truncate at the
// earliest trailing filter phrase, collapse whitespace. If refinement leaves
// fewer than 2 characters the trimmed original is returned instead, so a
// non-trivial input never refines to an unusably short query.
//
// Refinement is idempotent: refining an already-refined query returns it
// unchanged.
func RefineQuery(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: query must be a non-empty string", domain.ErrInvalidQuery)
	}

	query := strings.TrimSpace(raw)

	query = stripPrefixFilters(query)
	query = splitMultiTopic(query)
	query = splitWithClause(query)
	query = stripFilterKeywords(query)

	// Collapse internal whitespace runs
	query = strings.Join(strings.Fields(query), " ")

	// Degeneracy guard: never hand the provider an unusably short query
	// when the caller supplied something longer
	if len(query) < 2 {
		return strings.TrimSpace(raw), nil
	}

	return query, nil
}

// ValidateQuery is the non-throwing wrapper around RefineQuery used at the
// service boundary
func ValidateQuery(raw string) ValidationResult {
	if raw == "" {
		return ValidationResult{Reason: "query must be a non-empty string"}
	}

	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < 2 {
		return ValidationResult{Reason: "query is too short (minimum 2 characters)"}
	}
	if len(trimmed) > 200 {
		return ValidationResult{Reason: "query is too long (maximum 200 characters)"}
	}

	refined, err := RefineQuery(trimmed)
	if err != nil {
		return ValidationResult{Reason: "query must be a non-empty string"}
	}

	if !alphanumericPattern.MatchString(refined) {
		return ValidationResult{Reason: "query must contain alphanumeric characters"}
	}

	return ValidationResult{
		IsValid:      true,
		Reason:       "query is valid",
		RefinedQuery: refined,
	}
}

// stripPrefixFilters removes leading quality/price adjectives. Each prefix is
// applied at most once, in list order, so stacked prefixes like
// "cheap best laptop" reduce fully.
func stripPrefixFilters(query string) string {
	for _, prefix := range prefixFilters {
		if len(query) <= len(prefix) {
			continue
		}
		if !strings.EqualFold(query[:len(prefix)], prefix) {
			continue
		}
		rest := query[len(prefix):]
		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		if trimmed == rest {
			// Prefix is part of a longer word ("bestselling"), leave it
			continue
		}
		query = trimmed
	}
	return query
}

// splitMultiTopic truncates a multi-topic query to its first topic
func splitMultiTopic(query string) string {
	lower := strings.ToLower(query)
	for _, separator := range multiTopicSeparators {
		if idx := strings.Index(lower, separator); idx >= 0 {
			return strings.TrimSpace(query[:idx])
		}
	}
	return query
}

// splitWithClause drops a trailing "with ..." clause when it names an
// accessory or filter. "laptop with case" becomes "laptop" but
// "laptop with touchscreen" is kept intact.
func splitWithClause(query string) string {
	lower := strings.ToLower(query)
	idx := strings.Index(lower, " with ")
	if idx < 0 {
		return query
	}
	tail := query[idx+len(" with "):]
	if withAccessoryPattern.MatchString(tail) {
		return strings.TrimSpace(query[:idx])
	}
	return query
}

// stripFilterKeywords truncates the query at the earliest whole-word
// occurrence of any filter keyword
func stripFilterKeywords(query string) string {
	cut := -1
	for _, pattern := range filterKeywordPatterns {
		loc := pattern.FindStringIndex(query)
		if loc == nil {
			continue
		}
		if cut == -1 || loc[0] < cut {
			cut = loc[0]
		}
	}
	if cut >= 0 {
		return query[:cut]
	}
	return query
}
