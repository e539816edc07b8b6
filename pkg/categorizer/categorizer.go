// Package categorizer implements keyword rule based playlist categorization.
// A playlist's title and description are scored against a layered rule set
// (built-in rules followed by custom rules) and the best scored category wins.
// Batches can be summarized per category or filtered for manual review.
package categorizer

import (
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/playsort/pkg/domain"
)

const (
	// ConfidenceNormalization maps the best score to confidence, score/20 capped at 1
	ConfidenceNormalization = 20.0
	// ReviewThreshold is the confidence below which a playlist is suggested for review
	ReviewThreshold = 0.3
	// OverrideWeight is the weight of rules added by manual overrides
	OverrideWeight = 10
)

// Categorizer classifies playlists with rules from the RuleStore
type Categorizer struct {
	store *RuleStore
}

// New makes a categorizer using the given store. Nil store means built-in rules only.
func New(store *RuleStore) *Categorizer {
	if store == nil {
		store = NewRuleStore(BuiltinRules())
	}
	return &Categorizer{store: store}
}

// Store returns the rule store used by the categorizer
func (c *Categorizer) Store() *RuleStore {
	return c.store
}

// Classify picks the category for a title and description. It never fails,
// unmatched text gives (Other, 0).
func (c *Categorizer) Classify(title, description string) (domain.Category, float64) {
	return classify(analyzedText(title, description), c.store.Rules())
}

// Categorize classifies a single playlist
func (c *Categorizer) Categorize(p domain.Playlist) domain.CategorizedPlaylist {
	return categorize(p, c.store.Rules())
}

// CategorizeAll classifies every playlist, keeping the input order.
// The whole batch sees the same rule snapshot.
func (c *Categorizer) CategorizeAll(playlists []domain.Playlist) []domain.CategorizedPlaylist {
	rules := c.store.Rules()
	res := make([]domain.CategorizedPlaylist, len(playlists))
	for i, p := range playlists {
		res[i] = categorize(p, rules)
	}
	return res
}

// Summarize categorizes raw playlists and groups them per category.
// The result has an entry for every vocabulary category, empty ones included.
func (c *Categorizer) Summarize(playlists []domain.Playlist) domain.Summary {
	categorized := c.CategorizeAll(playlists)

	res := make(domain.Summary, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		res[cat] = domain.CategoryStats{Members: []domain.CategorizedPlaylist{}}
	}
	for _, cp := range categorized {
		stats := res[cp.Category]
		stats.Count++
		stats.TotalItems += cp.ItemCount
		stats.Members = append(stats.Members, cp)
		res[cp.Category] = stats
	}
	return res
}

// SuggestReview returns playlists worth a manual look: low confidence or no match at all
func (c *Categorizer) SuggestReview(playlists []domain.Playlist) []domain.CategorizedPlaylist {
	res := []domain.CategorizedPlaylist{}
	for _, cp := range c.CategorizeAll(playlists) {
		if NeedsReview(cp) {
			res = append(res, cp)
		}
	}
	return res
}

// NeedsReview reports whether a categorized playlist should be reviewed manually
func NeedsReview(cp domain.CategorizedPlaylist) bool {
	return cp.Confidence < ReviewThreshold || cp.Category == domain.CategoryOther
}

// AddCustomRule appends a custom rule to the underlying store
func (c *Categorizer) AddCustomRule(keywords []string, category domain.Category, weight int) error {
	return c.store.AddCustomRule(keywords, category, weight)
}

// Override records a manual category choice for a playlist. It adds a custom
// rule keyed by the playlist ID, so it only affects playlists whose title or
// description contains that ID as a word.
func (c *Categorizer) Override(playlistID, label string) (domain.Category, error) {
	cat, err := domain.ParseCategory(label)
	if err != nil {
		return domain.CategoryOther, fmt.Errorf("override %q: %w", playlistID, err)
	}
	if err := c.store.AddCustomRule([]string{strings.TrimSpace(playlistID)}, cat, OverrideWeight); err != nil {
		return domain.CategoryOther, fmt.Errorf("override %q: %w", playlistID, err)
	}
	lgr.Printf("[INFO] override for playlist %s set to %s, custom rules: %d", playlistID, cat, c.store.Version())
	return cat, nil
}

func categorize(p domain.Playlist, rules []domain.Rule) domain.CategorizedPlaylist {
	cat, conf := classify(analyzedText(p.Title, p.Description), rules)
	return domain.CategorizedPlaylist{Playlist: p, Category: cat, Confidence: conf}
}

func classify(text string, rules []domain.Rule) (domain.Category, float64) {
	best, score, ok := Score(text, rules).Best()
	if !ok {
		return domain.CategoryOther, 0
	}
	return best, min(float64(score)/ConfidenceNormalization, 1.0)
}
