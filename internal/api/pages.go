package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/linkboard/backend/internal/db"
	"github.com/linkboard/backend/internal/logger"
	"github.com/linkboard/backend/internal/session"
	"github.com/linkboard/backend/internal/web"
	"github.com/linkboard/backend/internal/ws"
)

// Index renders the public submission page.
func (rt *Router) Index(w http.ResponseWriter, r *http.Request) {
	if err := rt.renderer.Render(w, r, "index.html"); err != nil {
		logger.Error(r.Context(), "failed to render index page", err)
	}
}

// Submit handles the public submission form. All three outcomes (inserted,
// duplicate, validation failure) surface as a flash message on redirect.
func (rt *Router) Submit(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	url := strings.TrimSpace(r.FormValue("url"))

	if name == "" || url == "" {
		web.SetFlash(w, "error", "الرجاء إدخال الاسم والرابط")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	result := rt.classifier.Classify(url)

	video, err := rt.videos.Insert(r.Context(), name, url, result.Platform, result.EmbedURL)
	switch {
	case errors.Is(err, db.ErrDuplicateURL):
		web.SetFlash(w, "warning", "هذا الرابط موجود مسبقاً في النظام")
	case err != nil:
		logger.Error(r.Context(), "failed to insert video", err, map[string]any{
			"platform": result.Platform,
		})
		web.SetFlash(w, "error", "حدث خطأ غير متوقع، حاول مرة أخرى")
	default:
		web.SetFlash(w, "success", "تم إرسال الرابط بنجاح ✅")
		rt.hub.Broadcast(&ws.Event{
			Type:     "video_added",
			VideoID:  video.ID,
			Name:     video.Name,
			Platform: video.Platform,
		})
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AdminPanel renders the admin page. Mounted behind the session gate.
func (rt *Router) AdminPanel(w http.ResponseWriter, r *http.Request) {
	if err := rt.renderer.Render(w, r, "admin.html"); err != nil {
		logger.Error(r.Context(), "failed to render admin page", err)
	}
}

// AdminLoginPage renders the login form.
func (rt *Router) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	if err := rt.renderer.Render(w, r, "login.html"); err != nil {
		logger.Error(r.Context(), "failed to render login page", err)
	}
}

// AdminLogin checks the password and opens an admin session on match.
func (rt *Router) AdminLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	token, err := rt.sessions.Login(password)
	if err != nil {
		web.SetFlash(w, "error", "كلمة المرور غير صحيحة ❌")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	session.SetCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminLogout clears the session unconditionally.
func (rt *Router) AdminLogout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)
	web.SetFlash(w, "info", "تم تسجيل الخروج بنجاح")
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
