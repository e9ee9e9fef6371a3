// Package session implements the cookie session for the web application.
// The cookie carries a signed JWT; a server-side registry keyed by the token
// ID holds the live sessions, so logout revokes the token immediately instead
// of waiting for its expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "edutech_session"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	MemberID int64
	Name     string
	Role     domain.Role
}

// Store is the server-side session registry.
type Store interface {
	Save(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type sessionClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	secure bool
}

func NewManager(secret string, ttl time.Duration, store Store, secure bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		secure: secure,
	}
}

// Issue starts a session for member and returns the cookie to set.
func (m *Manager) Issue(ctx context.Context, member *domain.Member) (*http.Cookie, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiration := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: string(member.Role),
		Name: member.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   strconv.FormatInt(member.ID, 10),
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	ss, err := token.SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, id, m.ttl); err != nil {
		return nil, err
	}

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
	}
	if m.secure {
		cookie.SameSite = http.SameSiteStrictMode
	}

	return cookie, nil
}

// Resolve returns the principal for the request, or nil when the request
// carries no cookie, an invalid token, or a revoked session. It never fails
// the request: anything short of a live session just means anonymous.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) *Principal {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}

	alive, err := m.store.Exists(ctx, claims.ID)
	if err != nil || !alive {
		return nil
	}

	memberID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil
	}

	return &Principal{
		MemberID: memberID,
		Name:     claims.Name,
		Role:     domain.Role(claims.Role),
	}
}

// Destroy revokes the request's session and returns the cookie that clears
// the client side. Destroying an absent or invalid session is a no-op.
func (m *Manager) Destroy(ctx context.Context, r *http.Request) (*http.Cookie, error) {
	expired := &http.Cookie{
		Name:    CookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return expired, nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return expired, nil
	}

	if err := m.store.Delete(ctx, claims.ID); err != nil {
		return nil, err
	}

	return expired, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
