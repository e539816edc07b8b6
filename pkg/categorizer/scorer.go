package categorizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/umputun/playsort/pkg/domain"
)

// Scores is a per-category score accumulator. It remembers the order in which
// categories got their first positive score; Best relies on it for ties.
type Scores struct {
	order  []domain.Category
	values map[domain.Category]int
}

func (s *Scores) add(c domain.Category, v int) {
	if v <= 0 {
		return
	}
	if s.values == nil {
		s.values = make(map[domain.Category]int)
	}
	if _, ok := s.values[c]; !ok {
		s.order = append(s.order, c)
	}
	s.values[c] += v
}

// Get returns the score of c, zero if c never matched
func (s Scores) Get(c domain.Category) int {
	return s.values[c]
}

// Len returns the number of categories with a positive score
func (s Scores) Len() int {
	return len(s.order)
}

// Categories returns matched categories in insertion order
func (s Scores) Categories() []domain.Category {
	res := make([]domain.Category, len(s.order))
	copy(res, s.order)
	return res
}

// Best returns the highest scored category. On equal scores the category
// inserted first wins. ok is false when nothing matched.
func (s Scores) Best() (best domain.Category, score int, ok bool) {
	for _, c := range s.order {
		if v := s.values[c]; !ok || v > score {
			best, score, ok = c, v, true
		}
	}
	return best, score, ok
}

// Score accumulates weighted keyword matches of text against rules.
// Text and keywords are compared lowercased and only as whole words or phrases.
func Score(text string, rules []domain.Rule) Scores {
	text = strings.ToLower(text)
	var res Scores
	for _, rule := range rules {
		total := 0
		for _, kw := range rule.Keywords {
			total += countWord(text, strings.ToLower(kw)) * rule.Weight
		}
		res.add(rule.Category, total)
	}
	return res
}

// analyzedText joins title and description the way scoring expects
func analyzedText(title, description string) string {
	return title + " " + description
}

// countWord counts non-overlapping occurrences of word in text bounded by
// word boundaries on both sides. A boundary is a position where "is word char"
// differs between the runes before and after it.
func countWord(text, word string) int {
	if word == "" {
		return 0
	}
	count, pos := 0, 0
	for pos <= len(text)-len(word) {
		idx := strings.Index(text[pos:], word)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(word)
		if isBoundary(text, start) && isBoundary(text, end) {
			count++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return count
}

func isBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
