package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/edutech-dev/board/internal/domain"
)

type BoardRepository struct {
	*Repository
}

func (r *BoardRepository) Create(ctx context.Context, p *domain.BoardPost) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
		INSERT INTO board (title, content, writer)
		VALUES ($1, $2, $3)
		RETURNING bno, created_at, updated_at
	`

	args := []any{p.Title, p.Content, p.Writer}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.Bno, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *BoardRepository) GetByBno(ctx context.Context, bno int64) (*domain.BoardPost, error) {
	query := `
		SELECT title, content, writer, created_at, updated_at
		FROM board WHERE bno = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	p := &domain.BoardPost{Bno: bno}

	dst := []any{&p.Title, &p.Content, &p.Writer, &p.CreatedAt, &p.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, bno).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *BoardRepository) GetAll(ctx context.Context) ([]*domain.BoardPost, error) {
	query := `
		SELECT bno, title, content, writer, created_at, updated_at
		FROM board ORDER BY bno
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.BoardPost, 0)
	for rows.Next() {
		p := &domain.BoardPost{}
		dst := []any{&p.Bno, &p.Title, &p.Content, &p.Writer, &p.CreatedAt, &p.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update rewrites title and content in one statement so a missing bno can
// never leave a partial write behind. Bno and writer are never touched.
func (r *BoardRepository) Update(ctx context.Context, bno int64, title, content string) (*domain.BoardPost, error) {
	query := `
		UPDATE board
		SET title = $1, content = $2, updated_at = NOW()
		WHERE bno = $3
		RETURNING writer, created_at, updated_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	p := &domain.BoardPost{Bno: bno, Title: title, Content: content}

	dst := []any{&p.Writer, &p.CreatedAt, &p.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, title, content, bno).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *BoardRepository) Delete(ctx context.Context, bno int64) error {
	query := `
		DELETE FROM board WHERE bno = $1
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	// Removing an absent bno is a no-op, matching the permissive delete the
	// application has always had.
	_, err := r.dbpool.ExecContext(ctx, query, bno)
	if err != nil {
		return err
	}

	return nil
}
