//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package worldmap

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/chronicle/core"
)

const countKey = "map_count"

// regions removed by the cascade invalidate this
const regionCountKey = "region_count"

// Repository is the interface for world map repository
type Repository interface {
	List(ctx context.Context) ([]core.WorldMap, error)
	Get(ctx context.Context, id uint) (core.WorldMap, error)
	Create(ctx context.Context, worldMap core.WorldMap) (core.WorldMap, error)
	Update(ctx context.Context, worldMap core.WorldMap) (core.WorldMap, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new world map repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) refreshCount(ctx context.Context) int64 {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.WorldMap{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count maps",
			slog.String("error", err.Error()),
			slog.String("module", "worldmap"),
		)
		return 0
	}

	r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
	return count
}

// Count returns the total number of maps
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.Count")
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

// List returns every map without its regions
func (r *repository) List(ctx context.Context) ([]core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.List")
	defer span.End()

	var maps []core.WorldMap
	err := r.db.WithContext(ctx).Order("id ASC").Find(&maps).Error
	if err != nil {
		span.RecordError(err)
		return []core.WorldMap{}, err
	}
	if maps == nil {
		return []core.WorldMap{}, nil
	}
	return maps, nil
}

// Get returns a map row by id
func (r *repository) Get(ctx context.Context, id uint) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.Get")
	defer span.End()

	var worldMap core.WorldMap
	err := r.db.WithContext(ctx).First(&worldMap, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.WorldMap{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.WorldMap{}, err
	}
	return worldMap, nil
}

// Create inserts a map
func (r *repository) Create(ctx context.Context, worldMap core.WorldMap) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.Create")
	defer span.End()

	worldMap.ID = 0
	worldMap.Regions = nil
	err := r.db.WithContext(ctx).Create(&worldMap).Error
	if err != nil {
		span.RecordError(err)
		return core.WorldMap{}, err
	}

	r.refreshCount(ctx)

	return r.Get(ctx, worldMap.ID)
}

// Update replaces name, description and image url of a map
func (r *repository) Update(ctx context.Context, worldMap core.WorldMap) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.WorldMap{}).Where("id = ?", worldMap.ID).Updates(map[string]any{
		"name":        worldMap.Name,
		"description": worldMap.Description,
		"image_url":   worldMap.ImageURL,
	})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.WorldMap{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.WorldMap{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, worldMap.ID)
}

// Delete removes a map. Its regions go with it through the foreign key
func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "WorldMap.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.WorldMap{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.refreshCount(ctx)

	err := r.mc.Delete(regionCountKey)
	if err != nil && err != memcache.ErrCacheMiss {
		slog.ErrorContext(
			ctx, "failed to invalidate region count",
			slog.String("error", err.Error()),
			slog.String("module", "worldmap"),
		)
	}

	return nil
}
