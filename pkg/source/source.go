// Package source fetches playlist records and their videos from YouTube.
// Two implementations are provided: YouTube talks to the public playlist pages
// through kkdai/youtube, Feed reads the public playlist Atom feed.
package source

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/playsort/pkg/domain"
)

// ErrInvalidPlaylistRef is returned when a playlist reference has no usable ID
var ErrInvalidPlaylistRef = errors.New("invalid playlist reference")

// Source supplies playlist records and playlist videos
type Source interface {
	Playlist(ctx context.Context, ref string) (domain.Playlist, error)
	Videos(ctx context.Context, ref string, limit int) ([]domain.Video, error)
}

var strictPolicy = bluemonday.StrictPolicy()

// ExtractPlaylistID returns the playlist ID from a raw ID or a URL with a list parameter
func ExtractPlaylistID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPlaylistRef)
	}

	id := ref
	if strings.Contains(ref, "://") || strings.Contains(ref, "list=") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidPlaylistRef, ref, err)
		}
		id = u.Query().Get("list")
		if id == "" {
			return "", fmt.Errorf("%w: %q has no list parameter", ErrInvalidPlaylistRef, ref)
		}
	}

	for _, r := range id {
		if !isIDRune(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidPlaylistRef, id, r)
		}
	}
	return id, nil
}

func isIDRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-'
}

// cleanText strips any markup and entities so only plain text reaches the categorizer
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
