package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edutech-dev/board/internal/domain"
)

// boardFormView is the page data for the write and modify forms.
type boardFormView struct {
	Form   boardForm
	Errors map[string]string
}

func parseBno(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("bno"), 10, 64)
}

// JSON API surface.

// APIList returns every post. GET /api/list
func (h *Handler) APIList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.boards.ListAll(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toBoardDTOs(posts))
}

// APIRead returns one post, or JSON null when the bno is absent.
// GET /api/read?bno=
func (h *Handler) APIRead(w http.ResponseWriter, r *http.Request) {
	bno, err := parseBno(r)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid bno"))
		return
	}

	post, err := h.boards.Get(r.Context(), bno)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeJSON(w, r, http.StatusOK, nil)
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toBoardDTO(post))
}

// APIRegister creates a post and returns the generated bno.
// POST /api/register
func (h *Handler) APIRegister(w http.ResponseWriter, r *http.Request) {
	form := parseBoardForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.badRequest(w, r, err)
		return
	}

	bno, err := h.boards.Create(r.Context(), form.Title, form.Content, form.Writer)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, bno)
}

// APIModify updates a post and returns the updated shape. POST /api/modify
func (h *Handler) APIModify(w http.ResponseWriter, r *http.Request) {
	form := parseBoardForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.badRequest(w, r, err)
		return
	}

	post, err := h.boards.Update(r.Context(), form.Bno, form.Title, form.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.errorResponse(w, r, "post not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toBoardDTO(post))
}

// APIRemove deletes a post and redirects to the list. Removing an absent
// bno is a no-op. POST /api/remove
func (h *Handler) APIRemove(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	bno, err := strconv.ParseInt(r.PostFormValue("bno"), 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid bno"))
		return
	}

	if err := h.boards.Delete(r.Context(), bno); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.setFlash(w, "removed")
	http.Redirect(w, r, "/board/list", http.StatusSeeOther)
}

// Page surface.

// BoardList renders the post list. GET /board and /board/list
func (h *Handler) BoardList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.boards.ListAll(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	h.render(w, r, "board/list", toBoardDTOs(posts))
}

// BoardRead renders one post. Role-gated: any logged-in member.
// GET /board/read?bno=
func (h *Handler) BoardRead(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleUser, domain.RoleAdmin, domain.RoleTeacher) {
		return
	}

	bno, err := parseBno(r)
	if err != nil {
		http.Redirect(w, r, "/board/list", http.StatusSeeOther)
		return
	}

	post, err := h.boards.Get(r.Context(), bno)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Redirect(w, r, "/board/list", http.StatusSeeOther)
			return
		}
		h.pageError(w, r, err)
		return
	}

	h.render(w, r, "board/read", toBoardDTO(post))
}

// BoardWriteForm renders the write form. GET /board/write
func (h *Handler) BoardWriteForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "board/write", boardFormView{})
}

// BoardRegister handles the write submission. POST /board/register
func (h *Handler) BoardRegister(w http.ResponseWriter, r *http.Request) {
	form := parseBoardForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, "board/write", boardFormView{Form: form, Errors: h.fieldErrors(err)})
		return
	}

	if _, err := h.boards.Create(r.Context(), form.Title, form.Content, form.Writer); err != nil {
		h.pageError(w, r, err)
		return
	}

	http.Redirect(w, r, "/board/list", http.StatusSeeOther)
}

// BoardModifyForm renders the modify form prefilled with the current post.
// GET /board/modify?bno=
func (h *Handler) BoardModifyForm(w http.ResponseWriter, r *http.Request) {
	bno, err := parseBno(r)
	if err != nil {
		http.Redirect(w, r, "/board/list", http.StatusSeeOther)
		return
	}

	post, err := h.boards.Get(r.Context(), bno)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Redirect(w, r, "/board/list", http.StatusSeeOther)
			return
		}
		h.pageError(w, r, err)
		return
	}

	dto := toBoardDTO(post)
	h.render(w, r, "board/modify", boardFormView{Form: boardForm{
		Bno:     dto.Bno,
		Title:   dto.Title,
		Content: dto.Content,
		Writer:  dto.Writer,
	}})
}

// BoardModifyPro handles the modify submission. POST /board/modify
func (h *Handler) BoardModifyPro(w http.ResponseWriter, r *http.Request) {
	form := parseBoardForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, "board/modify", boardFormView{Form: form, Errors: h.fieldErrors(err)})
		return
	}

	if _, err := h.boards.Update(r.Context(), form.Bno, form.Title, form.Content); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Redirect(w, r, "/board/list", http.StatusSeeOther)
			return
		}
		h.pageError(w, r, err)
		return
	}

	h.setFlash(w, "modified")
	http.Redirect(w, r, "/board/read?bno="+strconv.FormatInt(form.Bno, 10), http.StatusSeeOther)
}

// BoardRemove handles the page-surface delete. POST /board/remove
func (h *Handler) BoardRemove(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	bno, err := strconv.ParseInt(r.PostFormValue("bno"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/board/list", http.StatusSeeOther)
		return
	}

	if err := h.boards.Delete(r.Context(), bno); err != nil {
		h.pageError(w, r, err)
		return
	}

	h.setFlash(w, "removed")
	http.Redirect(w, r, "/board/list", http.StatusSeeOther)
}
