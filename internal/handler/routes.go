package handler

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes wires the middleware chain and both HTTP surfaces. The
// request guards run in order (logging, panic containment, session
// resolution, then the path-pattern access policy) before routing dispatch.
func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.resolveSession)
	h.Mux.Use(h.accessControl(DefaultAccessPolicy()))

	h.Mux.Get("/", h.Index)

	// JSON API mirror of the board operations.
	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/list", h.APIList)
		r.Get("/read", h.APIRead)
		r.Post("/register", h.APIRegister)
		r.Post("/modify", h.APIModify)
		r.Post("/remove", h.APIRemove)
	})

	// Server-rendered board pages. "/board" and "/board/list" are the same
	// list page.
	h.Mux.Route("/board", func(r chi.Router) {
		r.Get("/", h.BoardList)
		r.Get("/list", h.BoardList)
		r.Get("/read", h.BoardRead)
		r.Get("/write", h.BoardWriteForm)
		r.Post("/write", h.BoardRegister)
		r.Post("/register", h.BoardRegister)
		r.Get("/modify", h.BoardModifyForm)
		r.Post("/modify", h.BoardModifyPro)
		r.Post("/remove", h.BoardRemove)
	})

	// Membership.
	h.Mux.Route("/member", func(r chi.Router) {
		r.Get("/new", h.MemberJoinForm)
		r.Post("/joinPro", h.MemberJoinPro)
		r.Post("/dup", h.MemberDup)
		r.Get("/login", h.MemberLogin)
		r.Get("/login/error", h.MemberLoginError)
		r.Post("/loginPro", h.MemberLoginPro)
		r.Post("/logout", h.MemberLogout)
	})
}
