package blog

import (
	"context"

	"github.com/totegamma/chronicle/core"
)

type service struct {
	repo Repository
}

// NewService creates a new blog service
func NewService(repo Repository) core.BlogService {
	return &service{repo}
}

// Count returns the count number of posts
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Blog.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// List returns all posts
func (s *service) List(ctx context.Context) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Create creates a new post
func (s *service) Create(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Service.Create")
	defer span.End()

	post.Tags = core.NormalizeTags(post.Tags)

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	return created, nil
}

// Update overwrites title, content and tags of an existing post
func (s *service) Update(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Service.Update")
	defer span.End()

	post.Tags = core.NormalizeTags(post.Tags)

	return s.repo.Update(ctx, post)
}

// Delete deletes a post
func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Blog.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}
