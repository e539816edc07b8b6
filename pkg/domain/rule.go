package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRule is returned for rules without keywords or with non-positive weight
var ErrMalformedRule = errors.New("malformed rule")

// Rule maps a set of keywords to a category. Each keyword occurrence in the
// analyzed text adds Weight to the category score.
type Rule struct {
	Keywords []string
	Category Category
	Weight   int
}

// NewRule makes a validated rule. Keywords are lowercased and copied,
// so the caller's slice can be reused.
func NewRule(keywords []string, category Category, weight int) (Rule, error) {
	if len(keywords) == 0 {
		return Rule{}, fmt.Errorf("%w: no keywords", ErrMalformedRule)
	}
	if weight <= 0 {
		return Rule{}, fmt.Errorf("%w: weight %d must be positive", ErrMalformedRule, weight)
	}
	if !category.Valid() {
		return Rule{}, fmt.Errorf("%w: %v", ErrMalformedRule, category)
	}

	kws := make([]string, len(keywords))
	for i, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return Rule{}, fmt.Errorf("%w: blank keyword at %d", ErrMalformedRule, i)
		}
		kws[i] = strings.ToLower(kw)
	}
	return Rule{Keywords: kws, Category: category, Weight: weight}, nil
}

// MustRule is NewRule for static rule tables, panics on invalid input
func MustRule(keywords []string, category Category, weight int) Rule {
	r, err := NewRule(keywords, category, weight)
	if err != nil {
		panic(err)
	}
	return r
}
