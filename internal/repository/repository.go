package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/edutech-dev/board/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS members (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL,
	username TEXT NOT NULL,
	name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'USER',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT members_email_key UNIQUE (email),
	CONSTRAINT members_username_key UNIQUE (username)
);
CREATE TABLE IF NOT EXISTS board (
	bno BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	writer TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// EnsureSchema creates the members and board tables when they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, schema)
	return err
}

// Members and Boards expose the repository under the domain interfaces so the
// service layer never sees the concrete type.
func (r *Repository) Members() *MemberRepository { return &MemberRepository{r} }
func (r *Repository) Boards() *BoardRepository   { return &BoardRepository{r} }

func (r *Repository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}
