package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/edutech-dev/board/internal/handler"
)

func seedPost(t *testing.T, env *testEnv, title, content, writer string) int64 {
	t.Helper()
	w := env.do(formRequest("/api/register", url.Values{
		"title":   {title},
		"content": {content},
		"writer":  {writer},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("api register status = %d: %s", w.Code, w.Body.String())
	}
	var bno int64
	if err := json.Unmarshal(w.Body.Bytes(), &bno); err != nil {
		t.Fatalf("api register did not return a bare bno: %s", w.Body.String())
	}
	return bno
}

func TestAPIRegisterAndRead(t *testing.T) {
	env := newTestEnv(t)

	bno := seedPost(t, env, "t1", "c1", "u1")
	if bno != 1 {
		t.Fatalf("first bno = %d, want 1", bno)
	}

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/read?bno=1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var dto handler.BoardDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Bno != 1 || dto.Title != "t1" || dto.Content != "c1" || dto.Writer != "u1" {
		t.Fatalf("roundtrip mismatch: %+v", dto)
	}
}

func TestAPIRead_Absent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/read?bno=99", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("absent bno must read as null, got %q", w.Body.String())
	}
}

func TestAPIList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/list", nil))
	var empty []handler.BoardDTO
	if err := json.Unmarshal(w.Body.Bytes(), &empty); err != nil {
		t.Fatalf("decode empty list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d", len(empty))
	}

	for i := 0; i < 3; i++ {
		seedPost(t, env, "t", "c", "u")
	}

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/list", nil))
	var dtos []handler.BoardDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dtos) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(dtos))
	}
	seen := make(map[int64]bool)
	for _, dto := range dtos {
		if seen[dto.Bno] {
			t.Fatalf("duplicate bno %d", dto.Bno)
		}
		seen[dto.Bno] = true
	}
}

func TestAPIRegister_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(formRequest("/api/register", url.Values{
		"title":   {""},
		"content": {"c1"},
		"writer":  {"u1"},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp handler.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatal("validation failure must not succeed")
	}
	if env.boards.Count() != 0 {
		t.Fatalf("validation failure must not write, count = %d", env.boards.Count())
	}
}

func TestAPIModify(t *testing.T) {
	env := newTestEnv(t)
	seedPost(t, env, "t1", "c1", "u1")

	w := env.do(formRequest("/api/modify", url.Values{
		"bno":     {"1"},
		"title":   {"t2"},
		"content": {"c2"},
		"writer":  {"u1"},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var dto handler.BoardDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Title != "t2" || dto.Content != "c2" {
		t.Fatalf("modify not applied: %+v", dto)
	}
	if dto.Writer != "u1" {
		t.Fatalf("modify must not change the writer: %+v", dto)
	}
}

func TestAPIModify_Absent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(formRequest("/api/modify", url.Values{
		"bno":     {"42"},
		"title":   {"t2"},
		"content": {"c2"},
		"writer":  {"u1"},
	}))

	var resp handler.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatal("modifying an absent bno must not succeed")
	}
}

func TestAPIRemove_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	seedPost(t, env, "t1", "c1", "u1")

	remove := func() *httptest.ResponseRecorder {
		return env.do(formRequest("/api/remove", url.Values{"bno": {"1"}}))
	}

	w := remove()
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/board/list" {
		t.Fatalf("remove must redirect to the list, got %d %q", w.Code, w.Header().Get("Location"))
	}

	// A second remove of the same bno is still a redirect, not an error.
	w = remove()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("second remove status = %d", w.Code)
	}
	if env.boards.Count() != 0 {
		t.Fatalf("board count = %d, want 0", env.boards.Count())
	}
}

func TestBoardRead_RequiresRole(t *testing.T) {
	env := newTestEnv(t)
	seedPost(t, env, "t1", "c1", "u1")

	// Anonymous requests are redirected to the login page, not served.
	w := env.do(httptest.NewRequest(http.MethodGet, "/board/read?bno=1", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/member/login" {
		t.Fatalf("redirect = %q, want /member/login", loc)
	}

	// A logged-in USER gets the page.
	env.register(t, "a@x.com", "auser", "pw1")
	cookie := env.login(t, "a@x.com", "pw1")

	req := httptest.NewRequest(http.MethodGet, "/board/read?bno=1", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "t1") {
		t.Fatal("expected the post title on the page")
	}
}

func TestBoardListPage(t *testing.T) {
	env := newTestEnv(t)
	seedPost(t, env, "hello board", "c1", "u1")

	for _, path := range []string{"/board", "/board/list"} {
		w := env.do(httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "hello board") {
			t.Fatalf("GET %s missing the post title", path)
		}
	}
}

func TestBoardRemovePage_Flash(t *testing.T) {
	env := newTestEnv(t)
	seedPost(t, env, "t1", "c1", "u1")

	w := env.do(formRequest("/board/remove", url.Values{"bno": {"1"}}))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}

	var flash *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "edutech_flash" {
			flash = cookie
		}
	}
	if flash == nil {
		t.Fatal("remove must set a flash cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/board/list", nil)
	req.AddCookie(flash)
	w = env.do(req)
	if !strings.Contains(w.Body.String(), "removed") {
		t.Fatal("expected the removed flash on the list page")
	}
}
