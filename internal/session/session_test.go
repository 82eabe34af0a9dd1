package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("correct-password", "test-session-secret")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login("correct-password")
	if err != nil {
		t.Fatalf("Login with correct password failed: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate rejected a freshly issued token: %v", err)
	}
	if !claims.Admin {
		t.Error("issued token is not marked admin")
	}
	if claims.ID == "" {
		t.Error("issued token has no session id")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	tests := []string{"wrong", "", "correct-password ", "CORRECT-PASSWORD"}
	for _, password := range tests {
		if _, err := svc.Login(password); !errors.Is(err, ErrInvalidPassword) {
			t.Errorf("Login(%q) error = %v, want ErrInvalidPassword", password, err)
		}
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)

	other, err := NewService("correct-password", "a-different-secret")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	token, err := other.Login("correct-password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate of foreign-signed token error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.issueToken(time.Now().Add(-2 * SessionExpiry))
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate of expired token error = %v, want ErrTokenExpired", err)
	}
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		if FromContext(r.Context()) == nil {
			http.Error(w, "no admin context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAPIUnauthenticated(t *testing.T) {
	svc := newTestService(t)

	var hit bool
	handler := svc.RequireAPI(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if hit {
		t.Error("handler ran despite missing session")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRequireAPIAuthenticated(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login("correct-password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	var hit bool
	handler := svc.RequireAPI(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !hit {
		t.Error("handler did not run for a valid session")
	}
}

func TestRequirePageRedirects(t *testing.T) {
	svc := newTestService(t)

	var hit bool
	handler := svc.RequirePage(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
	if hit {
		t.Error("handler ran despite missing session")
	}
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Name != CookieName || cookies[0].MaxAge != -1 {
		t.Errorf("clear cookie = %+v, want expired %s cookie", cookies[0], CookieName)
	}
}
