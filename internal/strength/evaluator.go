// Package strength scores passwords against a fixed additive rubric.
//
// Every criterion contributes zero or one point. The rubric is held as data
// so each row can be exercised on its own.
package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	maxSuggestions = 3

	emptySuggestion = "Enter a password to see strength analysis"
)

// Check is the outcome of a single criterion.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Report is the result of evaluating one password.
type Report struct {
	Score       int      `json:"score"`
	Level       Level    `json:"level"`
	Suggestions []string `json:"suggestions"`
	Checks      []Check  `json:"checks,omitempty"`
}

// Criterion is one row of the scoring rubric.
type Criterion struct {
	Name       string
	Suggestion string

	met func(pw string) bool
	// advise reports whether Suggestion applies when the criterion is unmet.
	// nil means always.
	advise func(pw string) bool
}

// Met reports whether pw earns this criterion's point. Only rows returned
// by Criteria carry a rule; the zero Criterion is never met.
func (c Criterion) Met(pw string) bool {
	if c.met == nil {
		return false
	}
	return c.met(pw)
}

func (c Criterion) suggestionFor(pw string) (string, bool) {
	if c.Suggestion == "" {
		return "", false
	}
	if c.advise != nil && !c.advise(pw) {
		return "", false
	}
	return c.Suggestion, true
}

var denylist = []string{
	"password", "123456", "qwerty", "abc123", "admin",
	"letmein", "welcome", "monkey", "dragon",
}

// sequences are the ascending runs checked for three-character windows.
// The digit run wraps so that "890" counts as sequential.
var sequences = []string{
	"01234567890",
	"abcdefghijklmnopqrstuvwxyz",
}

var criteria = []Criterion{
	{
		Name:       "min-length",
		Suggestion: "Use at least 8 characters",
		met:        minLength(8),
	},
	{
		Name:       "recommended-length",
		Suggestion: "Consider using 12+ characters",
		met:        minLength(12),
		advise:     minLength(8),
	},
	{
		Name: "long-length",
		met:  minLength(16),
	},
	{
		Name:       "lowercase",
		Suggestion: "Include lowercase letters",
		met:        containsRange('a', 'z'),
	},
	{
		Name:       "uppercase",
		Suggestion: "Include uppercase letters",
		met:        containsRange('A', 'Z'),
	},
	{
		Name:       "numbers",
		Suggestion: "Include numbers",
		met:        containsRange('0', '9'),
	},
	{
		Name:       "special",
		Suggestion: "Include special characters",
		met:        containsSpecial,
	},
	{
		Name:       "no-repeats",
		Suggestion: "Avoid repeating characters",
		met:        noRepeats,
	},
	{
		Name:       "no-sequences",
		Suggestion: "Avoid sequential characters",
		met:        noSequences,
	},
	{
		Name:       "no-common-patterns",
		Suggestion: "Avoid common password patterns",
		met:        noCommonPatterns,
	},
}

// Criteria returns the scoring rubric in evaluation order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// Evaluate scores password. It never fails: the empty string yields a zero
// report with a single prompt for input.
func Evaluate(password string) Report {
	if password == "" {
		return Report{
			Score:       0,
			Level:       VeryWeak,
			Suggestions: []string{emptySuggestion},
		}
	}

	score := 0
	suggestions := make([]string, 0, maxSuggestions)
	checks := make([]Check, 0, len(criteria))

	for _, c := range criteria {
		passed := c.Met(password)
		checks = append(checks, Check{Name: c.Name, Passed: passed})

		if passed {
			score++
			continue
		}
		if s, ok := c.suggestionFor(password); ok && len(suggestions) < maxSuggestions {
			suggestions = append(suggestions, s)
		}
	}

	score = clampScore(score)

	return Report{
		Score:       score,
		Level:       LevelFor(score),
		Suggestions: suggestions,
		Checks:      checks,
	}
}

func minLength(n int) func(string) bool {
	return func(pw string) bool {
		return utf8.RuneCountInString(pw) >= n
	}
}

func containsRange(lo, hi rune) func(string) bool {
	return func(pw string) bool {
		return strings.ContainsFunc(pw, func(r rune) bool {
			return r >= lo && r <= hi
		})
	}
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func containsSpecial(pw string) bool {
	return strings.ContainsFunc(pw, func(r rune) bool {
		return !isASCIIAlnum(r)
	})
}

// noRepeats reports whether no character occurs three or more times in a row.
func noRepeats(pw string) bool {
	var prev rune
	run := 0
	for _, r := range pw {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			return false
		}
		prev = r
	}
	return true
}

func noSequences(pw string) bool {
	runes := []rune(strings.ToLower(pw))
	for i := 0; i+3 <= len(runes); i++ {
		window := string(runes[i : i+3])
		for _, seq := range sequences {
			if strings.Contains(seq, window) {
				return false
			}
		}
	}
	return true
}

func noCommonPatterns(pw string) bool {
	lower := strings.ToLower(pw)
	for _, pattern := range denylist {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}
