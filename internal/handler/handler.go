package handler

import (
	"html/template"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/edutech-dev/board/internal/config"
	"github.com/edutech-dev/board/internal/service"
	"github.com/edutech-dev/board/internal/session"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	members    *service.MemberService
	boards     *service.BoardService
	sessions   *session.Manager
	translator ut.Translator
	templates  *template.Template

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, members *service.MemberService, boards *service.BoardService, sessions *session.Manager) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	templates, err := template.ParseGlob(filepath.Join(cfg.Templates.Dir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		members:    members,
		boards:     boards,
		sessions:   sessions,
		translator: trans,
		templates:  templates,

		Mux: chi.NewRouter(),
	}, nil
}
