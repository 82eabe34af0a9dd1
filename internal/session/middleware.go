package session

import (
	"context"
	"net/http"
	"time"

	apperrors "github.com/linkboard/backend/internal/errors"
)

type contextKey string

const adminContextKey contextKey = "admin_session"

// AdminContext describes the authenticated admin session for one request.
type AdminContext struct {
	SessionID string
	ExpiresAt time.Time
}

// FromContext returns the admin session attached to the request, or nil
// when the request is unauthenticated.
func FromContext(ctx context.Context) *AdminContext {
	admin, ok := ctx.Value(adminContextKey).(*AdminContext)
	if !ok {
		return nil
	}
	return admin
}

// authenticate checks the session cookie and returns the admin context, or
// nil when the cookie is missing, invalid, or expired.
func (s *Service) authenticate(r *http.Request) *AdminContext {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	claims, err := s.Validate(cookie.Value)
	if err != nil {
		return nil
	}

	return &AdminContext{
		SessionID: claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

// RequireAPI guards JSON endpoints: unauthenticated requests get a 401
// error body and the wrapped handler never runs.
func (s *Service) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := s.authenticate(r)
		if admin == nil {
			apperrors.WriteError(w, apperrors.GetRequestID(r.Context()), apperrors.Unauthorized())
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePage guards HTML pages: unauthenticated requests are redirected
// to the login page.
func (s *Service) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := s.authenticate(r)
		if admin == nil {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
