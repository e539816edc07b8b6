package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/playsort/pkg/domain"
)

// PlaylistRepository handles cached playlist records
type PlaylistRepository struct {
	db *sqlx.DB
}

type playlistRow struct {
	ID           string       `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	ItemCount    int          `db:"item_count"`
	PublishedAt  sql.NullTime `db:"published_at"`
	ThumbnailURL string       `db:"thumbnail_url"`
	Author       string       `db:"author"`
	Source       string       `db:"source"`
	Position     int          `db:"position"`
	SyncedAt     time.Time    `db:"synced_at"`
}

const playlistColumns = `id, title, description, item_count, published_at, thumbnail_url, author, source, position, synced_at`

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *sqlx.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// UpsertPlaylists stores playlists in a single transaction.
// The slice order is kept as the listing order, so callers pass playlists in configuration order.
func (r *PlaylistRepository) UpsertPlaylists(ctx context.Context, playlists []domain.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}

	query := `
		INSERT INTO playlists (` + playlistColumns + `)
		VALUES (:id, :title, :description, :item_count, :published_at, :thumbnail_url, :author, :source, :position, :synced_at)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			item_count = excluded.item_count,
			published_at = excluded.published_at,
			thumbnail_url = excluded.thumbnail_url,
			author = excluded.author,
			source = excluded.source,
			position = excluded.position,
			synced_at = excluded.synced_at,
			updated_at = CURRENT_TIMESTAMP
	`

	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return classify(err, "begin transaction")
		}
		defer func() { _ = tx.Rollback() }()

		for i, p := range playlists {
			if p.ID == "" {
				return &criticalError{err: fmt.Errorf("upsert playlist at %d: empty id", i)}
			}
			if _, err := tx.NamedExecContext(ctx, query, toPlaylistRow(p, i)); err != nil {
				return classify(err, "upsert playlist "+p.ID)
			}
		}

		if err := tx.Commit(); err != nil {
			return classify(err, "commit playlists")
		}
		return nil
	})
}

// GetPlaylists returns all cached playlists in listing order
func (r *PlaylistRepository) GetPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	var rows []playlistRow
	query := "SELECT " + playlistColumns + " FROM playlists ORDER BY position, id"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get playlists: %w", err)
	}

	res := make([]domain.Playlist, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// GetPlaylist returns a cached playlist by id, ErrNotFound if it is not cached
func (r *PlaylistRepository) GetPlaylist(ctx context.Context, id string) (domain.Playlist, error) {
	var row playlistRow
	err := r.db.GetContext(ctx, &row, "SELECT "+playlistColumns+" FROM playlists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Playlist{}, fmt.Errorf("get playlist %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("get playlist %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// DeletePlaylistsExcept removes playlists whose id is not in keep and returns the number removed.
// An empty keep list removes everything.
func (r *PlaylistRepository) DeletePlaylistsExcept(ctx context.Context, keep []string) (int64, error) {
	query, args := "DELETE FROM playlists", []any{}
	if len(keep) > 0 {
		var err error
		query, args, err = sqlx.In("DELETE FROM playlists WHERE id NOT IN (?)", keep)
		if err != nil {
			return 0, fmt.Errorf("build delete query: %w", err)
		}
		query = r.db.Rebind(query)
	}

	var removed int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return classify(err, "delete playlists")
		}
		if removed, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		return nil
	})
	return removed, err
}

func toPlaylistRow(p domain.Playlist, position int) playlistRow {
	row := playlistRow{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ItemCount:    p.ItemCount,
		ThumbnailURL: p.ThumbnailURL,
		Author:       p.Author,
		Source:       p.Source,
		Position:     position,
		SyncedAt:     p.SyncedAt.UTC(),
	}
	if !p.PublishedAt.IsZero() {
		row.PublishedAt = sql.NullTime{Time: p.PublishedAt.UTC(), Valid: true}
	}
	if p.SyncedAt.IsZero() {
		row.SyncedAt = time.Now().UTC()
	}
	return row
}

func (row playlistRow) toDomain() domain.Playlist {
	p := domain.Playlist{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		ItemCount:    row.ItemCount,
		ThumbnailURL: row.ThumbnailURL,
		Author:       row.Author,
		Source:       row.Source,
		SyncedAt:     row.SyncedAt.UTC(),
	}
	if row.PublishedAt.Valid {
		p.PublishedAt = row.PublishedAt.Time.UTC()
	}
	return p
}
