package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	playlist *youtube.Playlist
	err      error
	calls    []string
}

func (f *fakeGetter) GetPlaylistContext(_ context.Context, id string) (*youtube.Playlist, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.playlist, nil
}

func testPlaylist() *youtube.Playlist {
	return &youtube.Playlist{
		ID:          "PLcareer",
		Title:       "Career <i>growth</i>",
		Description: "Job interview &amp; resume tips",
		Author:      "Career Coach",
		Videos: []*youtube.PlaylistEntry{
			{
				ID: "v1", Title: "Interview basics", Author: "Career Coach", Duration: 5 * time.Minute,
				Thumbnails: youtube.Thumbnails{
					{URL: "https://i.ytimg.com/v1/small.jpg", Width: 120, Height: 90},
					{URL: "https://i.ytimg.com/v1/big.jpg", Width: 480, Height: 360},
				},
			},
			{ID: "v2", Title: "Resume review", Duration: time.Minute},
			{ID: "v3", Title: "Salary talk"},
		},
	}
}

func TestYouTube_Playlist(t *testing.T) {
	getter := &fakeGetter{playlist: testPlaylist()}
	yt := &YouTube{client: getter, now: func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }}

	pl, err := yt.Playlist(context.Background(), "https://www.youtube.com/playlist?list=PLcareer")
	require.NoError(t, err)
	assert.Equal(t, []string{"PLcareer"}, getter.calls)

	assert.Equal(t, "PLcareer", pl.ID)
	assert.Equal(t, "Career growth", pl.Title)
	assert.Equal(t, "Job interview & resume tips", pl.Description)
	assert.Equal(t, 3, pl.ItemCount)
	assert.Equal(t, "Career Coach", pl.Author)
	assert.Equal(t, NameYouTube, pl.Source)
	assert.Equal(t, "https://i.ytimg.com/v1/big.jpg", pl.ThumbnailURL)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), pl.SyncedAt)
}

func TestYouTube_PlaylistFillsMissingID(t *testing.T) {
	p := testPlaylist()
	p.ID = ""
	yt := &YouTube{client: &fakeGetter{playlist: p}, now: time.Now}

	pl, err := yt.Playlist(context.Background(), "PLcareer")
	require.NoError(t, err)
	assert.Equal(t, "PLcareer", pl.ID)
}

func TestYouTube_PlaylistSkipsNilEntries(t *testing.T) {
	p := testPlaylist()
	p.Videos = append([]*youtube.PlaylistEntry{nil}, p.Videos...)
	yt := &YouTube{client: &fakeGetter{playlist: p}, now: time.Now}

	pl, err := yt.Playlist(context.Background(), "PLcareer")
	require.NoError(t, err)
	assert.Equal(t, "https://i.ytimg.com/v1/big.jpg", pl.ThumbnailURL)

	p.Videos = []*youtube.PlaylistEntry{nil}
	pl, err = yt.Playlist(context.Background(), "PLcareer")
	require.NoError(t, err)
	assert.Empty(t, pl.ThumbnailURL)
}

func TestYouTube_Videos(t *testing.T) {
	yt := &YouTube{client: &fakeGetter{playlist: testPlaylist()}, now: time.Now}

	videos, err := yt.Videos(context.Background(), "PLcareer", 2)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, 1, videos[0].Position)
	assert.Equal(t, 5*time.Minute, videos[0].Duration)
	assert.Equal(t, "https://i.ytimg.com/v1/big.jpg", videos[0].ThumbnailURL)
	assert.Equal(t, "v2", videos[1].ID)
	assert.Equal(t, 2, videos[1].Position)

	all, err := yt.Videos(context.Background(), "PLcareer", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestYouTube_Errors(t *testing.T) {
	getter := &fakeGetter{err: errors.New("playlist not found")}
	yt := &YouTube{client: getter, now: time.Now}

	_, err := yt.Playlist(context.Background(), "PLnope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get youtube playlist PLnope")

	_, err = yt.Videos(context.Background(), "", 1)
	require.ErrorIs(t, err, ErrInvalidPlaylistRef)
	assert.Len(t, getter.calls, 1, "invalid ref never reaches the client")
}

func TestNewYouTube(t *testing.T) {
	yt := NewYouTube(10*time.Second, "playsort/1.0")
	client, ok := yt.client.(*youtube.Client)
	require.True(t, ok)
	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
}
