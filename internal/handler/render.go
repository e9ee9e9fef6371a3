package handler

import (
	"net/http"

	"github.com/edutech-dev/board/internal/session"
)

// viewData is the common payload for every rendered page. Page-specific data
// rides in the Data field.
type viewData struct {
	Principal *session.Principal
	Flash     string
	Data      any
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	vd := viewData{
		Principal: PrincipalFromContext(r.Context()),
		Flash:     h.popFlash(w, r),
		Data:      data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, vd); err != nil {
		h.logInternalServerError(r, err)
	}
}

// pageError is the page-surface counterpart of internalServerError.
func (h *Handler) pageError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
