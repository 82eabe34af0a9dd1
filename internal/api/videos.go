package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/linkboard/backend/internal/db"
	apperrors "github.com/linkboard/backend/internal/errors"
	"github.com/linkboard/backend/internal/ws"
)

// VideoListItem is one row of the admin listing. The raw submitted URL is
// deliberately omitted from API responses.
type VideoListItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	EmbedURL  string    `json:"embed_url"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoDetail is the single-record response.
type VideoDetail struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	EmbedURL string `json:"embed_url"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListVideos returns all records, newest first.
func (rt *Router) ListVideos(w http.ResponseWriter, r *http.Request) error {
	videos, err := rt.videos.ListAll(r.Context())
	if err != nil {
		return apperrors.DatabaseError("failed to list videos").WithCause(err)
	}

	items := make([]VideoListItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, VideoListItem{
			ID:        v.ID,
			Name:      v.Name,
			Platform:  v.Platform,
			EmbedURL:  v.EmbedURL,
			CreatedAt: v.CreatedAt,
		})
	}

	apperrors.WriteJSON(w, apperrors.GetRequestID(r.Context()), http.StatusOK, items)
	return nil
}

// GetVideo returns one record by id.
func (rt *Router) GetVideo(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	video, err := rt.videos.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrVideoNotFound) {
			return apperrors.VideoNotFound()
		}
		return apperrors.DatabaseError("failed to fetch video").WithCause(err)
	}

	apperrors.WriteJSON(w, apperrors.GetRequestID(r.Context()), http.StatusOK, VideoDetail{
		ID:       video.ID,
		Name:     video.Name,
		Platform: video.Platform,
		EmbedURL: video.EmbedURL,
	})
	return nil
}

// DeleteVideo removes one record. Deleting an absent id still succeeds.
func (rt *Router) DeleteVideo(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r)
	if err != nil {
		return err
	}

	if err := rt.videos.DeleteByID(r.Context(), id); err != nil {
		return apperrors.DatabaseError("failed to delete video").WithCause(err)
	}

	rt.hub.Broadcast(&ws.Event{Type: "video_deleted", VideoID: id})

	apperrors.WriteJSON(w, apperrors.GetRequestID(r.Context()), http.StatusOK, SuccessResponse{
		Success: true,
		Message: "تم حذف الفيديو",
	})
	return nil
}

// ClearVideos removes every record.
func (rt *Router) ClearVideos(w http.ResponseWriter, r *http.Request) error {
	if err := rt.videos.DeleteAll(r.Context()); err != nil {
		return apperrors.DatabaseError("failed to clear videos").WithCause(err)
	}

	rt.hub.Broadcast(&ws.Event{Type: "videos_cleared"})

	apperrors.WriteJSON(w, apperrors.GetRequestID(r.Context()), http.StatusOK, SuccessResponse{
		Success: true,
		Message: "تم حذف جميع الفيديوهات",
	})
	return nil
}

// parseID reads the {id} path segment. A non-numeric id behaves like an
// absent record.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperrors.VideoNotFound()
	}
	return id, nil
}
