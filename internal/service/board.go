package service

import (
	"context"

	"github.com/edutech-dev/board/internal/domain"
)

type BoardService struct {
	boards domain.BoardRepository
}

func NewBoardService(boards domain.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

// Create stores a new post and returns its store-assigned bno.
func (s *BoardService) Create(ctx context.Context, title, content, writer string) (int64, error) {
	post := &domain.BoardPost{
		Title:   title,
		Content: content,
		Writer:  writer,
	}
	if err := s.boards.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.Bno, nil
}

func (s *BoardService) Get(ctx context.Context, bno int64) (*domain.BoardPost, error) {
	return s.boards.GetByBno(ctx, bno)
}

// ListAll returns every post in bno order.
func (s *BoardService) ListAll(ctx context.Context) ([]*domain.BoardPost, error) {
	return s.boards.GetAll(ctx)
}

// Update changes title and content of an existing post. domain.ErrNotFound
// when bno is absent; the store is untouched in that case.
func (s *BoardService) Update(ctx context.Context, bno int64, title, content string) (*domain.BoardPost, error) {
	return s.boards.Update(ctx, bno, title, content)
}

// Delete removes a post. Deleting a bno that is already gone succeeds.
func (s *BoardService) Delete(ctx context.Context, bno int64) error {
	return s.boards.Delete(ctx, bno)
}
