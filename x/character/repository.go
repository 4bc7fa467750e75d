package character

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/totegamma/chronicle/core"
)

const countKey = "character_count"

// Repository is the interface for character repository
type Repository interface {
	List(ctx context.Context) ([]core.Character, error)
	Create(ctx context.Context, character core.Character) (core.Character, error)
	Update(ctx context.Context, character core.Character) (core.Character, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) refreshCount(ctx context.Context) int64 {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count characters",
			slog.String("error", err.Error()),
			slog.String("module", "character"),
		)
		return 0
	}

	r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
	return count
}

// Count returns the total number of characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
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

// List returns the whole roster
func (r *repository) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.List")
	defer span.End()

	var characters []core.Character
	err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error
	if err != nil {
		span.RecordError(err)
		return []core.Character{}, err
	}
	if characters == nil {
		return []core.Character{}, nil
	}
	return characters, nil
}

// Create inserts a character
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	character.ID = 0
	err := r.db.WithContext(ctx).Create(&character).Error
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	r.refreshCount(ctx)

	var created core.Character
	err = r.db.WithContext(ctx).First(&created, "id = ?", character.ID).Error
	return created, err
}

// Update replaces every mutable field of a character
func (r *repository) Update(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Character{}).Where("id = ?", character.ID).Updates(map[string]any{
		"name":        character.Name,
		"type":        character.Type,
		"location":    character.Location,
		"description": character.Description,
		"notes":       character.Notes,
		"tags":        character.Tags,
	})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Character{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Character{}, core.NewErrorNotFound()
	}

	var updated core.Character
	err := r.db.WithContext(ctx).First(&updated, "id = ?", character.ID).Error
	return updated, err
}

// Delete removes a character
func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Character{}, "id = ?", id)
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
