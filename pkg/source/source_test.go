package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{ref: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf", want: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf"},
		{ref: "  PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs ", want: "PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs"},
		{ref: "https://www.youtube.com/playlist?list=PL123_abc", want: "PL123_abc"},
		{ref: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLxyz&index=2", want: "PLxyz"},
		{ref: "youtube.com/playlist?list=PLnoscheme", want: "PLnoscheme"},
		{ref: "", wantErr: true},
		{ref: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantErr: true},
		{ref: "PL bad id", wantErr: true},
		{ref: "PL<script>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPlaylistRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Pizza Recipes", "Pizza Recipes"},
		{"<b>Pizza</b> &amp; pasta", "Pizza & pasta"},
		{"  <p>Fish &amp; chips</p><script>alert(1)</script> ", "Fish & chips"},
		{"Tom &#39;s cakes", "Tom 's cakes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanText(tt.in), tt.in)
	}
}

func TestApplyLimit(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, applyLimit(items, 2))
	assert.Equal(t, items, applyLimit(items, 0))
	assert.Equal(t, items, applyLimit(items, -1))
	assert.Equal(t, items, applyLimit(items, 10))
}
