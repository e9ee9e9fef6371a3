package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edutech-dev/board/internal/domain"
)

// BoardDTO is the external shape of a board post, shared by the JSON API and
// the rendered pages. Conversion to and from the persisted entity is explicit
// so the contract stays visible.
type BoardDTO struct {
	Bno       int64     `json:"bno"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Writer    string    `json:"writer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toBoardDTO(p *domain.BoardPost) BoardDTO {
	return BoardDTO{
		Bno:       p.Bno,
		Title:     p.Title,
		Content:   p.Content,
		Writer:    p.Writer,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toBoardDTOs(posts []*domain.BoardPost) []BoardDTO {
	dtos := make([]BoardDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toBoardDTO(p))
	}
	return dtos
}

// boardForm is the write/modify form input. Bno is only meaningful for
// modify and remove.
type boardForm struct {
	Bno     int64  `validate:"-"`
	Title   string `validate:"required"`
	Content string `validate:"required"`
	Writer  string `validate:"required"`
}

func parseBoardForm(r *http.Request) boardForm {
	_ = r.ParseForm()
	bno, _ := strconv.ParseInt(r.PostFormValue("bno"), 10, 64)
	return boardForm{
		Bno:     bno,
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
		Writer:  r.PostFormValue("writer"),
	}
}

// joinForm is the member registration input.
type joinForm struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=2,max=32"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=4"`
}

func parseJoinForm(r *http.Request) joinForm {
	_ = r.ParseForm()
	return joinForm{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}
}

// fieldErrors flattens validator output into field -> translated message for
// form re-rendering.
func (h *Handler) fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out[""] = err.Error()
		return out
	}

	for _, fe := range validationErrors {
		out[fe.Field()] = fe.Translate(h.translator)
	}
	return out
}
