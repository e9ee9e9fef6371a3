// Package memory holds in-memory implementations of the domain repositories.
// They back the service and handler tests so running a PostgreSQL instance is
// never a prerequisite for go test.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/edutech-dev/board/internal/domain"
)

type MemberRepository struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]*domain.Member
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		nextID:  1,
		members: make(map[int64]*domain.Member),
	}
}

func (r *MemberRepository) Create(_ context.Context, m *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.members {
		if existing.Email == m.Email {
			return domain.ErrDuplicateEmail
		}
		if existing.Username == m.Username {
			return domain.ErrDuplicateUsername
		}
	}

	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now()

	clone := *m
	r.members[m.ID] = &clone

	return nil
}

func (r *MemberRepository) GetByID(_ context.Context, id int64) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *MemberRepository) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemberRepository) GetByUsername(_ context.Context, username string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.Username == username {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemberRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Count reports how many members are stored. Test helper.
func (r *MemberRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

type BoardRepository struct {
	mu      sync.Mutex
	nextBno int64
	posts   map[int64]*domain.BoardPost
}

func NewBoardRepository() *BoardRepository {
	return &BoardRepository{
		nextBno: 1,
		posts:   make(map[int64]*domain.BoardPost),
	}
}

func (r *BoardRepository) Create(_ context.Context, p *domain.BoardPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.Bno = r.nextBno
	r.nextBno++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	clone := *p
	r.posts[p.Bno] = &clone

	return nil
}

func (r *BoardRepository) GetByBno(_ context.Context, bno int64) (*domain.BoardPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[bno]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *BoardRepository) GetAll(_ context.Context) ([]*domain.BoardPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]*domain.BoardPost, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Bno < posts[j].Bno })

	return posts, nil
}

func (r *BoardRepository) Update(_ context.Context, bno int64, title, content string) (*domain.BoardPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[bno]
	if !ok {
		return nil, domain.ErrNotFound
	}

	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now()

	clone := *p
	return &clone, nil
}

func (r *BoardRepository) Delete(_ context.Context, bno int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.posts, bno)
	return nil
}

// Count reports how many posts are stored. Test helper.
func (r *BoardRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.posts)
}
