package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label   string
		want    Category
		wantErr bool
	}{
		{label: "Food", want: CategoryFood},
		{label: "Health & Fitness", want: CategoryHealthFitness},
		{label: "Other", want: CategoryOther},
		{label: "food", wantErr: true},
		{label: "Health and Fitness", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseCategory(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.String())
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 10)
	assert.Equal(t, CategoryFood, cats[0])
	assert.Equal(t, CategoryOther, cats[len(cats)-1])
	for _, c := range cats {
		assert.True(t, c.Valid())
	}

	labels := CategoryLabels()
	assert.Equal(t, []string{"Food", "Career", "Investment", "Education", "Entertainment",
		"Health & Fitness", "Technology", "Travel", "Lifestyle", "Other"}, labels)

	labels[0] = "changed"
	assert.Equal(t, "Food", CategoryFood.String(), "labels must be a copy")
}

func TestCategory_JSON(t *testing.T) {
	cp := CategorizedPlaylist{Playlist: Playlist{ID: "PL1", Title: "t", ItemCount: 3},
		Category: CategoryHealthFitness, Confidence: 0.35}
	data, err := json.Marshal(cp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"video_count":3`)

	// encoding/json escapes "&" by default, compare the decoded value
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Health & Fitness", raw["category"])

	var back CategorizedPlaylist
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cp, back)

	err = json.Unmarshal([]byte(`{"category":"Cooking"}`), &back)
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = json.Marshal(Category(42))
	require.Error(t, err)
	assert.Equal(t, "Category(42)", Category(42).String())
}

func TestSummary_JSONKeys(t *testing.T) {
	s := Summary{CategoryFood: {Count: 1, TotalItems: 4}, CategoryOther: {}}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Food":{"playlist_count":1,"total_videos":4,"playlists":null}`)
	assert.Contains(t, string(data), `"Other":`)
}

func TestNewRule(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		kws := []string{"Pizza", "Dry Fruits"}
		r, err := NewRule(kws, CategoryFood, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"pizza", "dry fruits"}, r.Keywords)
		assert.Equal(t, CategoryFood, r.Category)
		assert.Equal(t, 10, r.Weight)

		kws[0] = "changed"
		assert.Equal(t, "pizza", r.Keywords[0], "keywords must be copied")
	})

	tests := []struct {
		name     string
		keywords []string
		category Category
		weight   int
	}{
		{name: "no keywords", keywords: nil, category: CategoryFood, weight: 1},
		{name: "blank keyword", keywords: []string{"ok", "  "}, category: CategoryFood, weight: 1},
		{name: "zero weight", keywords: []string{"ok"}, category: CategoryFood, weight: 0},
		{name: "negative weight", keywords: []string{"ok"}, category: CategoryFood, weight: -3},
		{name: "bad category", keywords: []string{"ok"}, category: Category(99), weight: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.keywords, tt.category, tt.weight)
			require.ErrorIs(t, err, ErrMalformedRule)
		})
	}

	assert.Panics(t, func() { MustRule(nil, CategoryFood, 1) })
}
