package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	// POST side: queue the flash.
	rec := httptest.NewRecorder()
	SetFlash(rec, "warning", "هذا الرابط موجود مسبقاً في النظام")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}

	// GET side: pop it.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	flash := PopFlash(rec2, req)
	if flash == nil {
		t.Fatal("PopFlash returned nil for a queued flash")
	}
	if flash.Category != "warning" {
		t.Errorf("Category = %q, want warning", flash.Category)
	}
	if flash.Message != "هذا الرابط موجود مسبقاً في النظام" {
		t.Errorf("Message = %q, want the queued message", flash.Message)
	}

	// Pop must clear the cookie so the message shows once.
	cleared := rec2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Error("PopFlash did not clear the flash cookie")
	}
}

func TestPopFlashNoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if flash := PopFlash(rec, req); flash != nil {
		t.Errorf("PopFlash = %+v, want nil without a cookie", flash)
	}
}

func TestPopFlashMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "not base64!"})
	rec := httptest.NewRecorder()

	if flash := PopFlash(rec, req); flash != nil {
		t.Errorf("PopFlash = %+v, want nil for malformed cookie", flash)
	}
}

func TestRendererParsesTemplates(t *testing.T) {
	rd, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	for _, page := range []string{"index.html", "login.html", "admin.html"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		if err := rd.Render(rec, req, page); err != nil {
			t.Errorf("Render(%s) failed: %v", page, err)
		}
		if rec.Body.Len() == 0 {
			t.Errorf("Render(%s) wrote no output", page)
		}
	}
}
