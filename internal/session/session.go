package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName carries the signed admin session token.
	CookieName = "admin_session"

	SessionExpiry = 24 * time.Hour
	BcryptCost    = 12
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Service gates the admin surface behind a single shared-secret password.
// The configured password is injected, not read from a global; a
// successful login issues a signed, expiring session token carried in an
// HTTP-only cookie.
type Service struct {
	passwordHash []byte
	secret       []byte
}

func NewService(adminPassword, sessionSecret string) (*Service, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		passwordHash: passwordHash,
		secret:       []byte(sessionSecret),
	}, nil
}

// Login compares the submitted password against the configured admin
// password and returns a session token on match.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.issueToken(time.Now())
}

func (s *Service) issueToken(now time.Time) (string, error) {
	claims := &Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks a session token's signature and expiry.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Admin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SetCookie attaches the session token to the response.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie unconditionally, regardless of
// whether the request carried a valid session.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
