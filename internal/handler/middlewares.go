package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/edutech-dev/board/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// resolveSession attaches the principal from a live session cookie to the
// request context. Requests without one proceed as anonymous.
func (h *Handler) resolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := h.sessions.Resolve(r.Context(), r)
		if principal == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessControl enforces the path-pattern policy ahead of routing. Rejected
// page requests are redirected to the login page; rejected API requests get
// a JSON error.
func (h *Handler) accessControl(policy AccessPolicy) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if policy.Allows(r.URL.Path, principal) {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				h.errorResponse(w, r, "insufficient permissions")
				return
			}
			http.Redirect(w, r, "/member/login", http.StatusSeeOther)
		})
	}
}

// requireRole is the fine-grained enforcement layer called at the top of
// role-gated handler bodies, after the path-pattern policy has already
// passed. It writes the denial itself and reports whether to continue.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, roles ...domain.Role) bool {
	principal := PrincipalFromContext(r.Context())
	if principal != nil && slices.Contains(roles, principal.Role) {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/") {
		h.errorResponse(w, r, "insufficient permissions")
		return false
	}
	http.Redirect(w, r, "/member/login", http.StatusSeeOther)
	return false
}
