//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package region

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/chronicle/core"
)

const countKey = "region_count"

const foreignKeyViolation = "23503"

// Repository is the interface for region repository
type Repository interface {
	List(ctx context.Context) ([]core.Region, error)
	ListByMap(ctx context.Context, mapID uint) ([]core.Region, error)
	Get(ctx context.Context, id uint) (core.Region, error)
	Create(ctx context.Context, region core.Region) (core.Region, error)
	Update(ctx context.Context, region core.Region) (core.Region, error)
	Delete(ctx context.Context, id uint) (core.Region, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new region repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) refreshCount(ctx context.Context) int64 {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Region{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count regions",
			slog.String("error", err.Error()),
			slog.String("module", "region"),
		)
		return 0
	}

	r.mc.Set(&memcache.Item{Key: countKey, Value: []byte(strconv.FormatInt(count, 10))})
	return count
}

// classify turns a foreign key violation on world_map_id into a client error
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return core.NewErrorInvalidArgument("world map does not exist")
	}
	return err
}

// Count returns the total number of regions
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.Count")
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

// List returns every region of every map
func (r *repository) List(ctx context.Context) ([]core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.List")
	defer span.End()

	var regions []core.Region
	err := r.db.WithContext(ctx).Order("id ASC").Find(&regions).Error
	if err != nil {
		span.RecordError(err)
		return []core.Region{}, err
	}
	if regions == nil {
		return []core.Region{}, nil
	}
	return regions, nil
}

// ListByMap returns the regions drawn on a map
func (r *repository) ListByMap(ctx context.Context, mapID uint) ([]core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.ListByMap")
	defer span.End()

	var regions []core.Region
	err := r.db.WithContext(ctx).Where("world_map_id = ?", mapID).Order("id ASC").Find(&regions).Error
	if err != nil {
		span.RecordError(err)
		return []core.Region{}, err
	}
	if regions == nil {
		return []core.Region{}, nil
	}
	return regions, nil
}

// Get returns a region by id
func (r *repository) Get(ctx context.Context, id uint) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.Get")
	defer span.End()

	var region core.Region
	err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Region{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Region{}, err
	}
	return region, nil
}

// Create inserts a region
func (r *repository) Create(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.Create")
	defer span.End()

	region.ID = 0
	err := r.db.WithContext(ctx).Create(&region).Error
	if err != nil {
		span.RecordError(err)
		return core.Region{}, classify(err)
	}

	r.refreshCount(ctx)

	return region, nil
}

// Update replaces every mutable field of a region
func (r *repository) Update(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Region{}).Where("id = ?", region.ID).Updates(map[string]any{
		"world_map_id": region.WorldMapID,
		"name":         region.Name,
		"description":  region.Description,
		"color":        region.Color,
		"path":         region.Path,
	})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Region{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return core.Region{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, region.ID)
}

// Delete removes a region and returns the deleted row
func (r *repository) Delete(ctx context.Context, id uint) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Repository.Delete")
	defer span.End()

	var deleted core.Region
	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&deleted)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Region{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Region{}, core.NewErrorNotFound()
	}

	r.refreshCount(ctx)

	return deleted, nil
}
