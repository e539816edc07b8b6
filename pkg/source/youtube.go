package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/umputun/playsort/pkg/domain"
)

// NameYouTube is the value stored in domain.Playlist.Source by YouTube
const NameYouTube = "youtube"

// playlistGetter is the part of youtube.Client used here
type playlistGetter interface {
	GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error)
}

// YouTube fetches playlists from youtube.com without any API key
type YouTube struct {
	client playlistGetter
	now    func() time.Time
}

// NewYouTube makes a YouTube source with the given request timeout and user agent
func NewYouTube(timeout time.Duration, userAgent string) *YouTube {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{agent: userAgent, next: http.DefaultTransport},
	}
	return &YouTube{client: &youtube.Client{HTTPClient: httpClient}, now: time.Now}
}

// Playlist returns the playlist record for ref
func (y *YouTube) Playlist(ctx context.Context, ref string) (domain.Playlist, error) {
	pl, err := y.get(ctx, ref)
	if err != nil {
		return domain.Playlist{}, err
	}

	res := domain.Playlist{
		ID:          pl.ID,
		Title:       cleanText(pl.Title),
		Description: cleanText(pl.Description),
		ItemCount:   len(pl.Videos),
		Author:      pl.Author,
		Source:      NameYouTube,
		SyncedAt:    y.now().UTC(),
	}
	for _, e := range pl.Videos {
		if e != nil {
			res.ThumbnailURL = bestThumbnail(e.Thumbnails)
			break
		}
	}
	return res, nil
}

// Videos returns up to limit entries of the playlist, all of them if limit is not positive
func (y *YouTube) Videos(ctx context.Context, ref string, limit int) ([]domain.Video, error) {
	pl, err := y.get(ctx, ref)
	if err != nil {
		return nil, err
	}

	entries := applyLimit(pl.Videos, limit)
	res := make([]domain.Video, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			continue
		}
		res = append(res, domain.Video{
			ID:           e.ID,
			Title:        cleanText(e.Title),
			Position:     i + 1,
			ThumbnailURL: bestThumbnail(e.Thumbnails),
			Author:       e.Author,
			Duration:     e.Duration,
		})
	}
	return res, nil
}

func (y *YouTube) get(ctx context.Context, ref string) (*youtube.Playlist, error) {
	id, err := ExtractPlaylistID(ref)
	if err != nil {
		return nil, err
	}
	pl, err := y.client.GetPlaylistContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get youtube playlist %s: %w", id, err)
	}
	if pl.ID == "" {
		pl.ID = id
	}
	return pl, nil
}

// bestThumbnail picks the widest thumbnail
func bestThumbnail(thumbs youtube.Thumbnails) string {
	var res string
	var width uint
	for _, th := range thumbs {
		if res == "" || th.Width > width {
			res, width = th.URL, th.Width
		}
	}
	return res
}

// userAgentTransport sets the configured user agent on requests which have none
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent == "" || req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(r)
}
