package blog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/totegamma/chronicle/core"
)

const countKey = "post_count"

// Repository is the interface for blog post repository
type Repository interface {
	List(ctx context.Context) ([]core.Post, error)
	Create(ctx context.Context, post core.Post) (core.Post, error)
	Update(ctx context.Context, post core.Post) (core.Post, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new blog post repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) refreshCount(ctx context.Context) int64 {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Post{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count posts",
			slog.String("error", err.Error()),
			slog.String("module", "blog"),
		)
		return 0
	}

	r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
	return count
}

// Count returns the total number of posts
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Blog.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countKey)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			return r.refreshCount(ctx), nil
		}
		span.RecordError(err)
		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// List returns every post, newest first
func (r *repository) List(ctx context.Context) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Repository.List")
	defer span.End()

	var posts []core.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&posts).Error
	if err != nil {
		span.RecordError(err)
		return []core.Post{}, err
	}
	if posts == nil {
		return []core.Post{}, nil
	}
	return posts, nil
}

// Create inserts a post. id and timestamps are assigned by the database
func (r *repository) Create(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Repository.Create")
	defer span.End()

	post.ID = 0
	err := r.db.WithContext(ctx).Create(&post).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	r.refreshCount(ctx)

	var created core.Post
	err = r.db.WithContext(ctx).First(&created, "id = ?", post.ID).Error
	return created, err
}

// Update replaces every mutable field of a post
func (r *repository) Update(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Blog.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Post{}).Where("id = ?", post.ID).Updates(map[string]any{
		"title":      post.Title,
		"content":    post.Content,
		"tags":       post.Tags,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Post{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Post{}, core.NewErrorNotFound()
	}

	var updated core.Post
	err := r.db.WithContext(ctx).First(&updated, "id = ?", post.ID).Error
	return updated, err
}

// Delete removes a post
func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Blog.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Post{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.refreshCount(ctx)

	return nil
}
