package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/edutech-dev/board/internal/config"
	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/handler"
	"github.com/edutech-dev/board/internal/repository/memory"
	"github.com/edutech-dev/board/internal/service"
	"github.com/edutech-dev/board/internal/session"
)

type testEnv struct {
	handler *handler.Handler
	members *memory.MemberRepository
	boards  *memory.BoardRepository
	svc     *service.MemberService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Environment = "test"
	cfg.Auth.LoginField = config.LoginFieldEmail
	cfg.Templates.Dir = "../../templates"

	memberRepo := memory.NewMemberRepository()
	boardRepo := memory.NewBoardRepository()

	// nil publisher: no welcome mail in handler tests, bcrypt cost 4 for speed.
	memberSvc := service.NewMemberService(memberRepo, nil, cfg.Auth.LoginField, 4)
	boardSvc := service.NewBoardService(boardRepo)
	sessions := session.NewManager("test-secret", time.Hour, session.NewMemoryStore(), false)

	h, err := handler.NewHandler(cfg, memberSvc, boardSvc, sessions)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	h.RegisterRoutes()

	return &testEnv{handler: h, members: memberRepo, boards: boardRepo, svc: memberSvc}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.handler.Mux.ServeHTTP(w, req)
	return w
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// register creates a member directly through the service.
func (e *testEnv) register(t *testing.T, email, username, password string) {
	t.Helper()
	_, err := e.svc.Register(context.Background(), service.RegisterForm{
		Email:    email,
		Username: username,
		Name:     "Test Member",
		Password: password,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
}

// login performs a loginPro submission and returns the session cookie.
func (e *testEnv) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	w := e.do(formRequest("/member/loginPro", url.Values{
		"email":    {email},
		"password": {password},
	}))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("loginPro status = %d", w.Code)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("loginPro did not set a session cookie")
	return nil
}

func TestAccessPolicy_Rules(t *testing.T) {
	policy := handler.DefaultAccessPolicy()

	if policy.Allows("/board/read", nil) {
		t.Fatal("anonymous must not pass /board/read")
	}
	if !policy.Allows("/board/read", &session.Principal{MemberID: 1, Role: domain.RoleUser}) {
		t.Fatal("USER must pass /board/read")
	}
	if !policy.Allows("/board/read", &session.Principal{MemberID: 1, Role: domain.RoleTeacher}) {
		t.Fatal("TEACHER must pass /board/read")
	}
	if !policy.Allows("/board/list", nil) {
		t.Fatal("catch-all must permit /board/list for anonymous")
	}
	if !policy.Allows("/member/login", nil) {
		t.Fatal("catch-all must permit the login page")
	}
}

func TestAccessPolicy_PrefixPattern(t *testing.T) {
	policy := handler.AccessPolicy{
		{Pattern: "/admin/**", Roles: []domain.Role{domain.RoleAdmin}},
		{Pattern: "/**", Roles: nil},
	}

	admin := &session.Principal{MemberID: 1, Role: domain.RoleAdmin}
	user := &session.Principal{MemberID: 2, Role: domain.RoleUser}

	if !policy.Allows("/admin/stats", admin) {
		t.Fatal("ADMIN must pass /admin/stats")
	}
	if policy.Allows("/admin/stats", user) {
		t.Fatal("USER must not pass /admin/stats")
	}
	if policy.Allows("/admin", nil) {
		t.Fatal("prefix pattern must also cover the bare prefix")
	}
	if !policy.Allows("/adminother", user) {
		t.Fatal("prefix match must stop at the path segment")
	}
}
