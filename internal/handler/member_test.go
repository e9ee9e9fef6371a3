package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestMemberJoinPro_Success(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(formRequest("/member/joinPro", url.Values{
		"email":    {"a@x.com"},
		"username": {"auser"},
		"name":     {"A User"},
		"password": {"pw1234"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect = %q, want /", loc)
	}
	if env.members.Count() != 1 {
		t.Fatalf("member count = %d, want 1", env.members.Count())
	}
}

func TestMemberJoinPro_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "first", "pw1")

	w := env.do(formRequest("/member/joinPro", url.Values{
		"email":    {"a@x.com"},
		"username": {"second"},
		"name":     {"Second"},
		"password": {"pw2345"},
	}))

	// The form is re-rendered with a message; nothing was written.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "already registered") {
		t.Fatal("expected the duplicate-email message in the re-rendered form")
	}
	if env.members.Count() != 1 {
		t.Fatalf("member count = %d, want 1", env.members.Count())
	}
}

func TestMemberJoinPro_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(formRequest("/member/joinPro", url.Values{
		"email":    {"not-an-email"},
		"username": {"auser"},
		"name":     {"A User"},
		"password": {"pw1234"},
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if env.members.Count() != 0 {
		t.Fatalf("invalid form must not write, count = %d", env.members.Count())
	}
}

func TestMemberDup(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "auser", "pw1")

	check := func(email string, want bool) {
		t.Helper()
		body, _ := json.Marshal(map[string]string{"email": email})
		req := httptest.NewRequest(http.MethodPost, "/member/dup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := env.do(req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var got bool
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("response is not a bare boolean: %s", w.Body.String())
		}
		if got != want {
			t.Fatalf("dup(%s) = %v, want %v", email, got, want)
		}
	}

	check("a@x.com", true)
	check("b@x.com", false)
}

func TestMemberLoginPro(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "auser", "pw1")

	// Success issues a session and lands on the index.
	cookie := env.login(t, "a@x.com", "pw1")
	if cookie.Value == "" {
		t.Fatal("empty session cookie")
	}

	// Bad password bounces to the error page with no session.
	w := env.do(formRequest("/member/loginPro", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	}))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/member/login/error" {
		t.Fatalf("redirect = %q, want /member/login/error", loc)
	}

	// Unknown account behaves identically to a bad password.
	w = env.do(formRequest("/member/loginPro", url.Values{
		"email":    {"nobody@x.com"},
		"password": {"pw1"},
	}))
	if loc := w.Header().Get("Location"); loc != "/member/login/error" {
		t.Fatalf("redirect = %q, want /member/login/error", loc)
	}
}

func TestMemberLogout(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "auser", "pw1")
	cookie := env.login(t, "a@x.com", "pw1")

	req := httptest.NewRequest(http.MethodPost, "/member/logout", nil)
	req.AddCookie(cookie)
	w := env.do(req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect = %q, want /", loc)
	}

	// The old cookie no longer opens the role-gated page.
	req = httptest.NewRequest(http.MethodGet, "/board/read?bno=1", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/member/login" {
		t.Fatalf("revoked session must be redirected to login, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestMemberLoginError_ShowsMessage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/member/login/error", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "check your login") {
		t.Fatal("expected the login failure message")
	}
}
