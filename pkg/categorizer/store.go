package categorizer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/umputun/playsort/pkg/domain"
)

// DefaultCustomWeight is the weight used for custom rules when none is given
const DefaultCustomWeight = 5

// RuleStore keeps built-in rules followed by custom rules in append order.
// Custom rules are never removed. Writers are serialized by mu and publish
// a fresh immutable snapshot, so readers never block and never see a partial append.
// The zero value is an empty store without built-in rules.
type RuleStore struct {
	mu       sync.Mutex
	builtin  int
	snapshot atomic.Pointer[[]domain.Rule]
}

// NewRuleStore makes a store seeded with the given built-in rules
func NewRuleStore(builtin []domain.Rule) *RuleStore {
	rules := make([]domain.Rule, len(builtin))
	copy(rules, builtin)
	s := &RuleStore{builtin: len(rules)}
	s.snapshot.Store(&rules)
	return s
}

// AddCustomRule validates and appends a rule. It affects only classifications
// started after it returns.
func (s *RuleStore) AddCustomRule(keywords []string, category domain.Category, weight int) error {
	rule, err := domain.NewRule(keywords, category, weight)
	if err != nil {
		return fmt.Errorf("add custom rule: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.Rules()
	next := make([]domain.Rule, len(current), len(current)+1)
	copy(next, current)
	next = append(next, rule)
	s.snapshot.Store(&next)
	return nil
}

// Rules returns the effective rule set, built-in rules first.
// The returned slice is a shared snapshot and must not be modified.
func (s *RuleStore) Rules() []domain.Rule {
	rules := s.snapshot.Load()
	if rules == nil {
		return nil
	}
	return *rules
}

// Builtin returns built-in rules only
func (s *RuleStore) Builtin() []domain.Rule {
	return s.Rules()[:s.builtin]
}

// Custom returns custom rules in append order
func (s *RuleStore) Custom() []domain.Rule {
	return s.Rules()[s.builtin:]
}

// Version is the number of custom rules appended so far. It only grows.
func (s *RuleStore) Version() int {
	return len(s.Rules()) - s.builtin
}
