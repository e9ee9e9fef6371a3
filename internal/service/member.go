package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edutech-dev/board/internal/config"
	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/mailer"
)

// RegisterForm carries the validated registration input into the service.
type RegisterForm struct {
	Email    string
	Username string
	Name     string
	Password string
}

type MemberService struct {
	members    domain.MemberRepository
	mail       mailer.Publisher
	loginField string
	bcryptCost int
}

func NewMemberService(members domain.MemberRepository, mail mailer.Publisher, loginField string, bcryptCost int) *MemberService {
	return &MemberService{
		members:    members,
		mail:       mail,
		loginField: loginField,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new USER member. A duplicate email or username aborts
// before any write. The welcome mail is queued after the write succeeds;
// a queue failure is logged but does not undo the registration.
func (s *MemberService) Register(ctx context.Context, form RegisterForm) (*domain.Member, error) {
	exists, err := s.members.EmailExists(ctx, form.Email)
	if err != nil {
		return nil, fmt.Errorf("check duplicate email: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := HashPassword(form.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &domain.Member{
		Email:        form.Email,
		Username:     form.Username,
		Name:         form.Name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	if s.mail != nil {
		msg := domain.MailMessage{
			Type: "welcome",
			To:   member.Email,
			Data: domain.WelcomeMailData{
				Name:     member.Name,
				Email:    member.Email,
				Username: member.Username,
			},
		}
		if err := s.mail.Publish(ctx, msg); err != nil {
			slog.Error("failed to queue welcome mail", "email", member.Email, "error", err)
		}
	}

	return member, nil
}

// IsDuplicateEmail reports whether a member with the given email exists.
// Read-only, safe to call unauthenticated.
func (s *MemberService) IsDuplicateEmail(ctx context.Context, email string) (bool, error) {
	return s.members.EmailExists(ctx, email)
}

// Authenticate verifies a login against the configured identifying field.
// Unknown logins and wrong passwords are indistinguishable to the caller.
func (s *MemberService) Authenticate(ctx context.Context, login, password string) (*domain.Member, error) {
	var member *domain.Member
	var err error

	switch s.loginField {
	case config.LoginFieldUsername:
		member, err = s.members.GetByUsername(ctx, login)
	default:
		member, err = s.members.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, member.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return member, nil
}

// EnsureInitialAdmin creates the configured ADMIN member if it is not there
// yet. Called at startup, idempotent.
func (s *MemberService) EnsureInitialAdmin(ctx context.Context, cfg config.Config) error {
	hash, err := HashPassword(cfg.InitialAdmin.Password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash initial admin password: %w", err)
	}

	member := &domain.Member{
		Email:        cfg.InitialAdmin.Email,
		Username:     cfg.InitialAdmin.Username,
		Name:         cfg.InitialAdmin.Name,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	err = s.members.Create(ctx, member)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrDuplicateUsername):
		// Already present from an earlier start.
		return nil
	default:
		return err
	}
}
