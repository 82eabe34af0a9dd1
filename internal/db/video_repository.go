package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrVideoNotFound = errors.New("video not found")

	// ErrDuplicateURL is a normal business outcome, not a fault: the
	// submitted URL is already on the board.
	ErrDuplicateURL = errors.New("url already exists")
)

type Video struct {
	ID        int64
	Name      string
	URL       string
	Platform  string
	EmbedURL  string
	CreatedAt time.Time
}

type VideoRepository struct {
	db *DB
}

func NewVideoRepository(db *DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Insert stores a new video record. Uniqueness of the original URL is
// enforced by the table constraint, never by check-then-insert; a
// constraint hit surfaces as ErrDuplicateURL.
func (r *VideoRepository) Insert(ctx context.Context, name, url, platform, embedURL string) (*Video, error) {
	createdAt := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO videos (name, url, platform, embed_url, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, url, platform, embedURL, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateURL
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Video{
		ID:        id,
		Name:      name,
		URL:       url,
		Platform:  platform,
		EmbedURL:  embedURL,
		CreatedAt: createdAt,
	}, nil
}

// ListAll returns every record, newest first. The id tiebreak keeps the
// order deterministic for inserts within the same timestamp.
func (r *VideoRepository) ListAll(ctx context.Context) ([]Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, url, platform, embed_url, created_at
		FROM videos
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []Video
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.Name, &v.URL, &v.Platform, &v.EmbedURL, &v.CreatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*Video, error) {
	var v Video
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, url, platform, embed_url, created_at
		FROM videos
		WHERE id = ?
	`, id).Scan(&v.ID, &v.Name, &v.URL, &v.Platform, &v.EmbedURL, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

// DeleteByID removes one record. Deleting an id that does not exist is not
// an error.
func (r *VideoRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	return err
}

func (r *VideoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM videos`)
	return err
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
