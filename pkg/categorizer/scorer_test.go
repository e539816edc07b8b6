package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/playsort/pkg/domain"
)

func TestCountWord(t *testing.T) {
	tests := []struct {
		text, word string
		want       int
	}{
		{"pizza delicious pizza recipes", "pizza", 2},
		{"pizza delicious pizza recipes", "recipe", 0},
		{"i love cupcakery", "cake", 0},
		{"cake, cake; cake!", "cake", 3},
		{"learn product management today", "product management", 1},
		{"product  management", "product management", 0},
		{"productmanagement", "product management", 0},
		{"rice-based dishes", "rice", 1},
		{"rice_bowl", "rice", 0},
		{"rice2go", "rice", 0},
		{"café food", "food", 1},
		{"foodé", "food", 0},
		{"aaa", "aa", 0},
		{"aa aa", "aa", 2},
		{"", "pizza", 0},
		{"pizza", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, countWord(tt.text, tt.word))
		})
	}
}

func TestScore(t *testing.T) {
	rules := []domain.Rule{
		domain.MustRule([]string{"pizza", "recipes"}, domain.CategoryFood, 10),
		domain.MustRule([]string{"trip"}, domain.CategoryTravel, 5),
		domain.MustRule([]string{"pizza"}, domain.CategoryFood, 1),
		domain.MustRule([]string{"nothing"}, domain.CategoryCareer, 8),
	}

	t.Run("weighted and accumulated", func(t *testing.T) {
		s := Score(analyzedText("Pizza", "Delicious PIZZA recipes on a trip"), rules)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 32, s.Get(domain.CategoryFood), "(2+1)*10 + 2*1")
		assert.Equal(t, 5, s.Get(domain.CategoryTravel))
		assert.Equal(t, 0, s.Get(domain.CategoryCareer), "zero scores are omitted")
		assert.Equal(t, []domain.Category{domain.CategoryFood, domain.CategoryTravel}, s.Categories())

		best, score, ok := s.Best()
		require.True(t, ok)
		assert.Equal(t, domain.CategoryFood, best)
		assert.Equal(t, 32, score)
	})

	t.Run("insertion order follows first matching rule", func(t *testing.T) {
		s := Score("trip and pizza", rules)
		assert.Equal(t, []domain.Category{domain.CategoryFood, domain.CategoryTravel}, s.Categories())

		s = Score("trip", rules)
		assert.Equal(t, []domain.Category{domain.CategoryTravel}, s.Categories())
	})

	t.Run("no match", func(t *testing.T) {
		s := Score("nothing here", rules[:3])
		assert.Zero(t, s.Len())
		_, _, ok := s.Best()
		assert.False(t, ok)
	})

	t.Run("empty text", func(t *testing.T) {
		s := Score(analyzedText("", ""), BuiltinRules())
		assert.Zero(t, s.Len())
	})

	t.Run("uppercase keyword in hand made rule", func(t *testing.T) {
		r := []domain.Rule{{Keywords: []string{"PIZZA"}, Category: domain.CategoryFood, Weight: 2}}
		assert.Equal(t, 2, Score("pizza", r).Get(domain.CategoryFood))
	})
}

func TestBuiltinRules(t *testing.T) {
	rules := BuiltinRules()
	require.Len(t, rules, 9)

	seen := map[domain.Category]bool{}
	for _, r := range rules {
		assert.NotEmpty(t, r.Keywords)
		assert.GreaterOrEqual(t, r.Weight, 4)
		assert.LessOrEqual(t, r.Weight, 10)
		assert.NotEqual(t, domain.CategoryOther, r.Category)
		seen[r.Category] = true
	}
	assert.Len(t, seen, 9, "one rule per non-fallback category")
	assert.Equal(t, domain.CategoryFood, rules[0].Category)
	assert.Equal(t, 10, rules[0].Weight)
}

func TestRuleStore(t *testing.T) {
	store := NewRuleStore(BuiltinRules())
	assert.Equal(t, 0, store.Version())
	assert.Len(t, store.Rules(), 9)
	assert.Empty(t, store.Custom())

	before := store.Rules()
	require.NoError(t, store.AddCustomRule([]string{"Sourdough"}, domain.CategoryFood, DefaultCustomWeight))
	require.NoError(t, store.AddCustomRule([]string{"sourdough"}, domain.CategoryLifestyle, 1))
	assert.Len(t, before, 9, "old snapshot untouched")

	assert.Equal(t, 2, store.Version())
	require.Len(t, store.Rules(), 11)
	assert.Len(t, store.Builtin(), 9)
	custom := store.Custom()
	require.Len(t, custom, 2)
	assert.Equal(t, []string{"sourdough"}, custom[0].Keywords)
	assert.Equal(t, domain.CategoryFood, custom[0].Category)
	assert.Equal(t, domain.CategoryLifestyle, custom[1].Category)

	err := store.AddCustomRule(nil, domain.CategoryFood, 1)
	require.ErrorIs(t, err, domain.ErrMalformedRule)
	err = store.AddCustomRule([]string{"x"}, domain.CategoryFood, 0)
	require.ErrorIs(t, err, domain.ErrMalformedRule)
	assert.Equal(t, 2, store.Version())

	// both duplicate rules contribute, food first
	cat, conf := New(store).Classify("sourdough", "")
	assert.Equal(t, domain.CategoryFood, cat)
	assert.InDelta(t, 0.25, conf, 1e-9)
}

func TestRuleStore_ZeroValue(t *testing.T) {
	store := &RuleStore{}
	assert.Empty(t, store.Rules())
	assert.Empty(t, store.Builtin())
	assert.Empty(t, store.Custom())
	assert.Equal(t, 0, store.Version())

	cat, conf := New(store).Classify("pizza", "")
	assert.Equal(t, domain.CategoryOther, cat)
	assert.InDelta(t, 0.0, conf, 1e-9)

	require.NoError(t, store.AddCustomRule([]string{"pizza"}, domain.CategoryFood, 4))
	assert.Equal(t, 1, store.Version())
	require.Len(t, store.Custom(), 1)
	cat, conf = New(store).Classify("pizza", "")
	assert.Equal(t, domain.CategoryFood, cat)
	assert.InDelta(t, 0.2, conf, 1e-9)
}
