// Package service joins the repositories into the single store used by the scheduler and the server
package service

import (
	"context"

	"github.com/umputun/playsort/pkg/domain"
	"github.com/umputun/playsort/pkg/repository"
)

// Store provides unified access to the playlist cache and the sync history
type Store struct {
	playlistRepo *repository.PlaylistRepository
	syncRunRepo  *repository.SyncRunRepository
}

// NewStore creates a store on top of the repositories
func NewStore(repos *repository.Repositories) *Store {
	return &Store{playlistRepo: repos.Playlist, syncRunRepo: repos.SyncRun}
}

// Playlist cache methods

func (s *Store) GetPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return s.playlistRepo.GetPlaylists(ctx)
}

func (s *Store) GetPlaylist(ctx context.Context, id string) (domain.Playlist, error) {
	return s.playlistRepo.GetPlaylist(ctx, id)
}

func (s *Store) UpsertPlaylists(ctx context.Context, playlists []domain.Playlist) error {
	return s.playlistRepo.UpsertPlaylists(ctx, playlists)
}

func (s *Store) DeletePlaylistsExcept(ctx context.Context, keep []string) (int64, error) {
	return s.playlistRepo.DeletePlaylistsExcept(ctx, keep)
}

// Sync history methods

func (s *Store) StartRun(ctx context.Context) (domain.SyncRun, error) {
	return s.syncRunRepo.StartRun(ctx)
}

func (s *Store) FinishRun(ctx context.Context, run *domain.SyncRun) error {
	return s.syncRunRepo.FinishRun(ctx, run)
}

func (s *Store) LastRun(ctx context.Context) (domain.SyncRun, error) {
	return s.syncRunRepo.LastRun(ctx)
}
