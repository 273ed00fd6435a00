package forum

import (
	"context"
	"errors"

	"github.com/imran-binhasan/fitstat-server/internal/user"
)

var ErrNotPostAuthor = errors.New("post belongs to another user")

type Service interface {
	CreatePost(ctx context.Context, authorID int, req CreatePostRequest) (*Post, error)
	GetPost(ctx context.Context, id int) (*Post, error)
	ListPosts(ctx context.Context, includeHidden bool, limit, offset int) ([]Post, error)
	UpdatePost(ctx context.Context, userID, postID int, req UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, userID, postID int, isAdmin bool) error
	PinPost(ctx context.Context, postID int, pinned bool) (*Post, error)
	HidePost(ctx context.Context, postID int, hidden bool) (*Post, error)
	Vote(ctx context.Context, postID int, direction string) (*Post, error)
}

type service struct {
	repo  Repository
	users user.Service
}

func NewService(repo Repository, users user.Service) Service {
	return &service{repo: repo, users: users}
}

// CreatePost denormalizes the author's name and role onto the post so
// listings never join against users.
func (s *service) CreatePost(ctx context.Context, authorID int, req CreatePostRequest) (*Post, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, author.ID, author.Name, author.Role, req)
}

func (s *service) GetPost(ctx context.Context, id int) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPosts(ctx context.Context, includeHidden bool, limit, offset int) ([]Post, error) {
	return s.repo.List(ctx, includeHidden, limit, offset)
}

func (s *service) UpdatePost(ctx context.Context, userID, postID int, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	return s.repo.Update(ctx, postID, req)
}

func (s *service) DeletePost(ctx context.Context, userID, postID int, isAdmin bool) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !isAdmin && post.AuthorID != userID {
		return ErrNotPostAuthor
	}

	return s.repo.Delete(ctx, postID)
}

func (s *service) PinPost(ctx context.Context, postID int, pinned bool) (*Post, error) {
	return s.repo.SetPinned(ctx, postID, pinned)
}

func (s *service) HidePost(ctx context.Context, postID int, hidden bool) (*Post, error) {
	return s.repo.SetHidden(ctx, postID, hidden)
}

func (s *service) Vote(ctx context.Context, postID int, direction string) (*Post, error) {
	delta := 1
	if direction == "down" {
		delta = -1
	}

	return s.repo.AddVote(ctx, postID, delta)
}
