package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/session"
)

const testSecret = "test-session-secret"

func newTestManager(t *testing.T, ttl time.Duration) *session.Manager {
	t.Helper()
	return session.NewManager(testSecret, ttl, session.NewMemoryStore(), false)
}

func testMember() *domain.Member {
	return &domain.Member{
		ID:       7,
		Email:    "a@x.com",
		Username: "auser",
		Name:     "A User",
		Role:     domain.RoleTeacher,
	}
}

func requestWithCookie(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/board/read?bno=1", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	return r
}

func TestManager_IssueResolveRoundtrip(t *testing.T) {
	m := newTestManager(t, time.Hour)
	ctx := context.Background()

	cookie, err := m.Issue(ctx, testMember())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if cookie.Name != session.CookieName || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}

	p := m.Resolve(ctx, requestWithCookie(cookie))
	if p == nil {
		t.Fatal("expected a principal")
	}
	if p.MemberID != 7 || p.Role != domain.RoleTeacher || p.Name != "A User" {
		t.Fatalf("wrong principal: %+v", p)
	}
}

func TestManager_ResolveAnonymous(t *testing.T) {
	m := newTestManager(t, time.Hour)
	ctx := context.Background()

	if p := m.Resolve(ctx, requestWithCookie(nil)); p != nil {
		t.Fatalf("no cookie must resolve anonymous, got %+v", p)
	}

	forged := &http.Cookie{Name: session.CookieName, Value: "not.a.token"}
	if p := m.Resolve(ctx, requestWithCookie(forged)); p != nil {
		t.Fatalf("malformed token must resolve anonymous, got %+v", p)
	}

	// A token signed with a different secret must not resolve.
	other := session.NewManager("other-secret", time.Hour, session.NewMemoryStore(), false)
	cookie, err := other.Issue(ctx, testMember())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if p := m.Resolve(ctx, requestWithCookie(cookie)); p != nil {
		t.Fatalf("foreign-signed token must resolve anonymous, got %+v", p)
	}
}

func TestManager_DestroyRevokes(t *testing.T) {
	m := newTestManager(t, time.Hour)
	ctx := context.Background()

	cookie, err := m.Issue(ctx, testMember())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expired, err := m.Destroy(ctx, requestWithCookie(cookie))
	if err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if expired.Value != "" || !expired.Expires.Before(time.Now()) {
		t.Fatalf("expected an expiring cookie, got %+v", expired)
	}

	// The original token is still signed and unexpired, but the session is
	// gone server-side.
	if p := m.Resolve(ctx, requestWithCookie(cookie)); p != nil {
		t.Fatalf("revoked session must resolve anonymous, got %+v", p)
	}

	// Destroying again is a no-op.
	if _, err := m.Destroy(ctx, requestWithCookie(cookie)); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
}

func TestManager_ExpiredSession(t *testing.T) {
	m := newTestManager(t, -time.Minute)
	ctx := context.Background()

	cookie, err := m.Issue(ctx, testMember())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if p := m.Resolve(ctx, requestWithCookie(cookie)); p != nil {
		t.Fatalf("expired session must resolve anonymous, got %+v", p)
	}
}
