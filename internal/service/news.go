package service

import (
	"context"
	"errors"
	"time"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
)

// ErrNewsNotFound covers both a missing post and a post the actor does not own.
var ErrNewsNotFound = errors.New("news not found")

// NewsService handles news business logic: visibility and ownership.
type NewsService struct {
	repo *repository.NewsRepository
	now  func() time.Time
}

// NewNewsService creates a new NewsService.
func NewNewsService(repo *repository.NewsRepository) *NewsService {
	return &NewsService{repo: repo, now: time.Now}
}

// ListPublic returns every non-private post, oldest first.
func (s *NewsService) ListPublic(ctx context.Context) ([]model.News, error) {
	return s.repo.ListPublic(ctx)
}

// Get returns a post by id. Private posts are returned too.
func (s *NewsService) Get(ctx context.Context, id int64) (*model.News, error) {
	n, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNewsNotFound) {
		return nil, ErrNewsNotFound
	}
	return n, err
}

// GetOwned returns a post only if actor owns it.
func (s *NewsService) GetOwned(ctx context.Context, id int64, actor model.User) (*model.News, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != actor.ID {
		return nil, ErrNewsNotFound
	}
	return n, nil
}

// Create stores a new post owned by owner. Unknown category ids are ignored.
func (s *NewsService) Create(ctx context.Context, owner model.User, in model.NewsInput) (*model.News, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	n := &model.News{
		Title:       in.Title,
		Content:     in.Content,
		CreatedDate: s.now().UTC(),
		IsPrivate:   in.IsPrivate,
		UserID:      owner.ID,
		AuthorName:  owner.Name,
	}

	if err := s.repo.Create(ctx, n, in.CategoryIDs); err != nil {
		return nil, err
	}

	return s.Get(ctx, n.ID)
}

// Update replaces the post's fields and its whole category set.
func (s *NewsService) Update(ctx context.Context, id int64, actor model.User, in model.NewsInput) (*model.News, error) {
	n, err := s.GetOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := Validate(in); err != nil {
		return nil, err
	}

	n.Title = in.Title
	n.Content = in.Content
	n.IsPrivate = in.IsPrivate

	if err := s.repo.Update(ctx, n, in.CategoryIDs); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes a post owned by actor.
func (s *NewsService) Delete(ctx context.Context, id int64, actor model.User) error {
	if _, err := s.GetOwned(ctx, id, actor); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNewsNotFound) {
		return ErrNewsNotFound
	}
	return err
}
