package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopsearch/backend/internal/domain"
)

func TestRefineQuery(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "plain query unchanged",
			query: "laptop",
			want:  "laptop",
		},
		{
			name:  "trims surrounding whitespace",
			query: "  gaming laptop  ",
			want:  "gaming laptop",
		},
		{
			name:  "strips prefix filter",
			query: "best laptop",
			want:  "laptop",
		},
		{
			name:  "longest prefix wins over shorter",
			query: "best rated laptop",
			want:  "laptop", // not "rated laptop"
		},
		{
			name:  "strips stacked prefixes",
			query: "cheap best laptop",
			want:  "laptop",
		},
		{
			name:  "prefix inside longer word kept",
			query: "bestselling novels",
			want:  "bestselling novels",
		},
		{
			name:  "star rating prefix",
			query: "5 star blender",
			want:  "blender",
		},
		{
			name:  "multi topic and",
			query: "laptop and mouse",
			want:  "laptop",
		},
		{
			name:  "multi topic or",
			query: "tablet or e-reader",
			want:  "tablet",
		},
		{
			name:  "multi topic plus",
			query: "monitor plus stand",
			want:  "monitor",
		},
		{
			name:  "multi topic comma list",
			query: "laptop, mouse, keyboard",
			want:  "laptop",
		},
		{
			name:  "with clause naming accessory is dropped",
			query: "laptop with case",
			want:  "laptop",
		},
		{
			name:  "with clause naming genuine modifier kept",
			query: "laptop with touchscreen",
			want:  "laptop with touchscreen",
		},
		{
			name:  "with clause naming shipping filter dropped",
			query: "Nintendo Switch with prime shipping",
			want:  "Nintendo Switch",
		},
		{
			name:  "with clause after multi topic split",
			query: "laptop with 16gb ram and ssd",
			want:  "laptop",
		},
		{
			name:  "price filter stripped",
			query: "wireless headphones under $100",
			want:  "wireless headphones",
		},
		{
			name:  "shipping filter stripped",
			query: "coffee maker free shipping",
			want:  "coffee maker",
		},
		{
			name:  "earliest filter keyword wins",
			query: "office chair under $200 with free shipping",
			want:  "office chair",
		},
		{
			name:  "trailing best seller stripped",
			query: "running shoes best seller",
			want:  "running shoes",
		},
		{
			name:  "filter keyword needs word boundary",
			query: "thunderbolt dock",
			want:  "thunderbolt dock", // "under" inside "thunderbolt" is not a keyword
		},
		{
			name:  "collapses internal whitespace",
			query: "gaming   mechanical   keyboard",
			want:  "gaming mechanical keyboard",
		},
		{
			name:  "degenerate result falls back to original",
			query: "a, b",
			want:  "a, b",
		},
		{
			name:  "mixed case filter stripped",
			query: "Standing Desk UNDER 300",
			want:  "Standing Desk",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RefineQuery(tc.query)
			if err != nil {
				t.Fatalf("RefineQuery(%q) error: %v", tc.query, err)
			}
			if got != tc.want {
				t.Errorf("RefineQuery(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestRefineQuery_EmptyInput(t *testing.T) {
	_, err := RefineQuery("")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("RefineQuery(\"\") error = %v, want ErrInvalidQuery", err)
	}
}

func TestRefineQuery_Idempotent(t *testing.T) {
	queries := []string{
		"laptop",
		"best rated laptop",
		"laptop and mouse",
		"laptop with case",
		"laptop with touchscreen",
		"wireless headphones under $100",
		"cheap best 5 star blender with free shipping",
		"a, b",
		"  gaming   laptop  ",
		"Nintendo Switch with prime shipping",
		"office chair under $200, desk lamp",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			once, err := RefineQuery(query)
			if err != nil {
				t.Fatalf("first refinement error: %v", err)
			}
			twice, err := RefineQuery(once)
			if err != nil {
				t.Fatalf("second refinement error: %v", err)
			}
			if once != twice {
				t.Errorf("refinement not idempotent: %q -> %q -> %q", query, once, twice)
			}
		})
	}
}

func TestRefineQuery_DegeneracyGuard(t *testing.T) {
	// Refinement never produces a result shorter than 2 characters unless
	// the trimmed original was already that short
	queries := []string{
		"x, y, z",
		"a with case",
		"b under $10",
		"laptop",
		"tv deal",
	}

	for _, query := range queries {
		got, err := RefineQuery(query)
		if err != nil {
			t.Fatalf("RefineQuery(%q) error: %v", query, err)
		}
		if len(got) < 2 && len(strings.TrimSpace(query)) >= 2 {
			t.Errorf("RefineQuery(%q) = %q, degenerately short", query, got)
		}
	}
}

func TestValidateQuery(t *testing.T) {
	testCases := []struct {
		name        string
		query       string
		wantValid   bool
		wantReason  string
		wantRefined string
	}{
		{
			name:       "empty query",
			query:      "",
			wantValid:  false,
			wantReason: "query must be a non-empty string",
		},
		{
			name:       "whitespace only",
			query:      "   ",
			wantValid:  false,
			wantReason: "query is too short (minimum 2 characters)",
		},
		{
			name:       "single character",
			query:      "a",
			wantValid:  false,
			wantReason: "query is too short (minimum 2 characters)",
		},
		{
			name:       "too long",
			query:      strings.Repeat("x", 201),
			wantValid:  false,
			wantReason: "query is too long (maximum 200 characters)",
		},
		{
			name:       "no alphanumeric characters",
			query:      "!!!",
			wantValid:  false,
			wantReason: "query must contain alphanumeric characters",
		},
		{
			name:        "valid query is refined",
			query:       "best rated laptop",
			wantValid:   true,
			wantRefined: "laptop",
		},
		{
			name:        "valid plain query",
			query:       "espresso machine",
			wantValid:   true,
			wantRefined: "espresso machine",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateQuery(tc.query)
			if result.IsValid != tc.wantValid {
				t.Errorf("ValidateQuery(%q).IsValid = %v, want %v", tc.query, result.IsValid, tc.wantValid)
			}
			if tc.wantReason != "" && result.Reason != tc.wantReason {
				t.Errorf("ValidateQuery(%q).Reason = %q, want %q", tc.query, result.Reason, tc.wantReason)
			}
			if tc.wantRefined != "" && result.RefinedQuery != tc.wantRefined {
				t.Errorf("ValidateQuery(%q).RefinedQuery = %q, want %q", tc.query, result.RefinedQuery, tc.wantRefined)
			}
			if !result.IsValid && result.RefinedQuery != "" {
				t.Errorf("invalid query should not carry a refined query, got %q", result.RefinedQuery)
			}
		})
	}
}
