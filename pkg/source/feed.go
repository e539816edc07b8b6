package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/playsort/pkg/domain"
)

// NameFeed is the value stored in domain.Playlist.Source by Feed
const NameFeed = "feed"

// DefaultFeedURL is the public YouTube feed endpoint
const DefaultFeedURL = "https://www.youtube.com/feeds/videos.xml"

// Feed reads playlists from the YouTube playlist Atom feed.
// The feed carries only the latest entries, so ItemCount is bounded by the feed size.
type Feed struct {
	client    *http.Client
	userAgent string
	baseURL   string
	now       func() time.Time
}

// NewFeed makes a feed source, empty baseURL means DefaultFeedURL
func NewFeed(baseURL string, timeout time.Duration, userAgent string) *Feed {
	if baseURL == "" {
		baseURL = DefaultFeedURL
	}
	return &Feed{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// Playlist returns the playlist record for ref
func (f *Feed) Playlist(ctx context.Context, ref string) (domain.Playlist, error) {
	id, feed, err := f.parse(ctx, ref)
	if err != nil {
		return domain.Playlist{}, err
	}

	res := domain.Playlist{
		ID:          id,
		Title:       cleanText(feed.Title),
		Description: cleanText(feed.Description),
		ItemCount:   len(feed.Items),
		Source:      NameFeed,
		SyncedAt:    f.now().UTC(),
	}
	if feed.Author != nil {
		res.Author = feed.Author.Name
	}
	if feed.PublishedParsed != nil {
		res.PublishedAt = feed.PublishedParsed.UTC()
	} else if feed.UpdatedParsed != nil {
		res.PublishedAt = feed.UpdatedParsed.UTC()
	}
	if len(feed.Items) > 0 {
		res.ThumbnailURL = itemThumbnail(feed.Items[0])
	}
	return res, nil
}

// Videos returns up to limit feed entries, all of them if limit is not positive
func (f *Feed) Videos(ctx context.Context, ref string, limit int) ([]domain.Video, error) {
	_, feed, err := f.parse(ctx, ref)
	if err != nil {
		return nil, err
	}

	items := applyLimit(feed.Items, limit)
	res := make([]domain.Video, 0, len(items))
	for i, item := range items {
		v := domain.Video{
			ID:           itemVideoID(item),
			Title:        cleanText(item.Title),
			Description:  cleanText(itemDescription(item)),
			Position:     i + 1,
			ThumbnailURL: itemThumbnail(item),
		}
		if item.Author != nil {
			v.Author = item.Author.Name
		}
		if item.PublishedParsed != nil {
			v.PublishedAt = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			v.PublishedAt = item.UpdatedParsed.UTC()
		}
		res = append(res, v)
	}
	return res, nil
}

func (f *Feed) parse(ctx context.Context, ref string) (string, *gofeed.Feed, error) {
	id, err := ExtractPlaylistID(ref)
	if err != nil {
		return "", nil, err
	}

	feedURL, err := url.Parse(f.baseURL)
	if err != nil {
		return "", nil, fmt.Errorf("parse feed base url: %w", err)
	}
	q := feedURL.Query()
	q.Set("playlist_id", id)
	feedURL.RawQuery = q.Encode()

	body, err := f.fetch(ctx, feedURL.String())
	if err != nil {
		return "", nil, fmt.Errorf("fetch playlist feed %s: %w", id, err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return "", nil, fmt.Errorf("parse playlist feed %s: %w", id, err)
	}
	return id, feed, nil
}

// fetch retrieves the feed body
func (f *Feed) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// itemVideoID reads yt:videoId, falling back to the entry GUID
func itemVideoID(item *gofeed.Item) string {
	if v := item.Extensions["yt"]["videoId"]; len(v) > 0 && v[0].Value != "" {
		return v[0].Value
	}
	return item.GUID
}

// itemDescription reads media:group/media:description
func itemDescription(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	for _, g := range item.Extensions["media"]["group"] {
		if d := g.Children["description"]; len(d) > 0 {
			return d[0].Value
		}
	}
	return ""
}

// itemThumbnail reads media:group/media:thumbnail url
func itemThumbnail(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, g := range item.Extensions["media"]["group"] {
		if th := g.Children["thumbnail"]; len(th) > 0 {
			return th[0].Attrs["url"]
		}
	}
	return ""
}
