package handler

import (
	"errors"
	"net/http"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/service"
)

// joinView is the page data for the registration form.
type joinView struct {
	Form         joinForm
	Errors       map[string]string
	ErrorMessage string
}

// loginView is the page data for the login form.
type loginView struct {
	LoginField    string
	LoginErrorMsg string
}

// MemberJoinForm renders the registration form. GET /member/new
func (h *Handler) MemberJoinForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "member/join", joinView{})
}

// MemberJoinPro handles the registration submission. POST /member/joinPro
func (h *Handler) MemberJoinPro(w http.ResponseWriter, r *http.Request) {
	form := parseJoinForm(r)
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, "member/join", joinView{Form: form, Errors: h.fieldErrors(err)})
		return
	}

	_, err := h.members.Register(r.Context(), form.toRegisterForm())
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.render(w, r, "member/join", joinView{Form: form, ErrorMessage: "This email is already registered."})
	case errors.Is(err, domain.ErrDuplicateUsername):
		h.render(w, r, "member/join", joinView{Form: form, ErrorMessage: "This username is already taken."})
	default:
		h.pageError(w, r, err)
	}
}

// MemberDup answers the duplicate-email pre-check. POST /member/dup
// The reply is a bare boolean, kept for client compatibility.
func (h *Handler) MemberDup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dup, err := h.members.IsDuplicateEmail(r.Context(), req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, dup)
}

// MemberLogin renders the login page. GET /member/login
func (h *Handler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "member/login", loginView{LoginField: h.config.Auth.LoginField})
}

// MemberLoginError renders the login page with the failure message.
// GET /member/login/error
func (h *Handler) MemberLoginError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "member/login", loginView{
		LoginField:    h.config.Auth.LoginField,
		LoginErrorMsg: "Please check your login and password.",
	})
}

// MemberLoginPro handles the credential submission. POST /member/loginPro
// The identifying form field is the configured login field, so deployments
// keyed on email and on username both work.
func (h *Handler) MemberLoginPro(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	login := r.PostFormValue(h.config.Auth.LoginField)
	password := r.PostFormValue("password")

	member, err := h.members.Authenticate(r.Context(), login, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// The message never says whether the account exists.
			http.Redirect(w, r, "/member/login/error", http.StatusSeeOther)
			return
		}
		h.pageError(w, r, err)
		return
	}

	cookie, err := h.sessions.Issue(r.Context(), member)
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// MemberLogout terminates the session. POST /member/logout
func (h *Handler) MemberLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := h.sessions.Destroy(r.Context(), r)
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (f joinForm) toRegisterForm() service.RegisterForm {
	return service.RegisterForm{
		Email:    f.Email,
		Username: f.Username,
		Name:     f.Name,
		Password: f.Password,
	}
}
