package handler

import "net/http"

// Index renders the landing page. GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index", nil)
}
