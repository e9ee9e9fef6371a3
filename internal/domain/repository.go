package domain

import "context"

// MemberRepository persists members. Implementations map storage-level
// uniqueness violations to ErrDuplicateEmail / ErrDuplicateUsername and
// missing rows to ErrNotFound.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	GetByUsername(ctx context.Context, username string) (*Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// BoardRepository persists board posts keyed by a store-assigned bno.
type BoardRepository interface {
	Create(ctx context.Context, p *BoardPost) error
	GetByBno(ctx context.Context, bno int64) (*BoardPost, error)
	GetAll(ctx context.Context) ([]*BoardPost, error)
	// Update rewrites title and content of an existing post in a single
	// atomic statement. ErrNotFound when bno is absent.
	Update(ctx context.Context, bno int64, title, content string) (*BoardPost, error)
	// Delete removes a post. Deleting an absent bno is not an error.
	Delete(ctx context.Context, bno int64) error
}
