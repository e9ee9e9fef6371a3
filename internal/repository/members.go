package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

type MemberRepository struct {
	*Repository
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		INSERT INTO members (email, username, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	args := []any{m.Email, m.Username, m.Name, m.PasswordHash, m.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "members_email_key":
				return domain.ErrDuplicateEmail
			case "members_username_key":
				return domain.ErrDuplicateUsername
			}
		}
		return err
	}

	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT email, username, name, password_hash, role, created_at
		FROM members WHERE id = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	m := &domain.Member{ID: id}

	dst := []any{&m.Email, &m.Username, &m.Name, &m.PasswordHash, &m.Role, &m.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `
		SELECT id, username, name, password_hash, role, created_at
		FROM members WHERE email = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	m := &domain.Member{Email: email}

	dst := []any{&m.ID, &m.Username, &m.Name, &m.PasswordHash, &m.Role, &m.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *MemberRepository) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM members WHERE username = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	m := &domain.Member{Username: username}

	dst := []any{&m.ID, &m.Email, &m.Name, &m.PasswordHash, &m.Role, &m.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *MemberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists := false

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM members WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
