package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash is a one-shot status message shown on the next page render.
type Flash struct {
	Category string // "success", "warning", "error", "info"
	Message  string
}

const flashCookieName = "flash"

// SetFlash queues a message for the next page render. The value is carried
// in a short-lived cookie across the POST-redirect-GET hop.
func SetFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}

	return &Flash{Category: category, Message: message}
}
