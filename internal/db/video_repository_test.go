package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *VideoRepository {
	t.Helper()

	database, err := New(filepath.Join(t.TempDir(), "videos.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewVideoRepository(database)
}

func TestInsertAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, "قناة الأخبار", "https://youtu.be/dQw4w9WgXcQ", "YouTube", "https://www.youtube.com/embed/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if inserted.ID == 0 {
		t.Error("Insert returned zero id")
	}

	got, err := repo.GetByID(ctx, inserted.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != inserted.Name || got.URL != inserted.URL || got.Platform != inserted.Platform || got.EmbedURL != inserted.EmbedURL {
		t.Errorf("GetByID returned %+v, want %+v", got, inserted)
	}
	if got.CreatedAt.IsZero() {
		t.Error("GetByID returned zero CreatedAt")
	}
}

func TestInsertDuplicateURL(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Insert(ctx, "first", "https://example.com/a.mp4", "فيديو مباشر", "https://example.com/a.mp4"); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}

	// Same URL, different name: must be rejected as a duplicate, not
	// overwritten.
	_, err := repo.Insert(ctx, "second", "https://example.com/a.mp4", "فيديو مباشر", "https://example.com/a.mp4")
	if !errors.Is(err, ErrDuplicateURL) {
		t.Fatalf("second Insert error = %v, want ErrDuplicateURL", err)
	}

	videos, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(videos) != 1 {
		t.Errorf("store contains %d records for the URL, want 1", len(videos))
	}
	if len(videos) > 0 && videos[0].Name != "first" {
		t.Errorf("surviving record name = %q, want %q", videos[0].Name, "first")
	}
}

func TestListAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	urls := []string{
		"https://example.com/1.mp4",
		"https://example.com/2.mp4",
		"https://example.com/3.mp4",
	}
	for _, u := range urls {
		if _, err := repo.Insert(ctx, "clip", u, "فيديو مباشر", u); err != nil {
			t.Fatalf("Insert(%q) failed: %v", u, err)
		}
	}

	videos, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("ListAll returned %d records, want 3", len(videos))
	}

	// Inserts land within the same second; the id tiebreak must still
	// order newest first.
	for i := 0; i < len(videos)-1; i++ {
		if videos[i].ID < videos[i+1].ID {
			t.Errorf("ListAll order: id %d before id %d, want newest first", videos[i].ID, videos[i+1].ID)
		}
	}
	if videos[0].URL != urls[2] {
		t.Errorf("first listed URL = %q, want %q", videos[0].URL, urls[2])
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrVideoNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrVideoNotFound", err)
	}
}

func TestDeleteByIDIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	v, err := repo.Insert(ctx, "clip", "https://example.com/x.mp4", "فيديو مباشر", "https://example.com/x.mp4")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := repo.DeleteByID(ctx, v.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}

	// Deleting again, and deleting an id that never existed, are not
	// errors and leave the store unchanged.
	if err := repo.DeleteByID(ctx, v.ID); err != nil {
		t.Errorf("second DeleteByID errored: %v", err)
	}
	if err := repo.DeleteByID(ctx, 12345); err != nil {
		t.Errorf("DeleteByID of unknown id errored: %v", err)
	}

	videos, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("store contains %d records after delete, want 0", len(videos))
	}
}

func TestDeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, u := range []string{"https://example.com/1.mp4", "https://example.com/2.mp4"} {
		if _, err := repo.Insert(ctx, "clip", u, "فيديو مباشر", u); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	videos, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("store contains %d records after DeleteAll, want 0", len(videos))
	}
}
