package region

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/chronicle/core"
)

type service struct {
	repo  Repository
	event core.EventService
}

// NewService creates a new region service
func NewService(repo Repository, event core.EventService) core.RegionService {
	return &service{repo, event}
}

func normalize(region core.Region) (core.Region, error) {
	if region.WorldMapID == 0 {
		return region, core.NewErrorInvalidArgument("world_map_id is required")
	}
	region.Path = strings.TrimSpace(region.Path)
	_, err := core.ParseRegionPath(region.Path)
	if err != nil {
		return region, core.NewErrorInvalidArgument(err.Error())
	}
	if region.Color == "" {
		region.Color = core.DefaultRegionColor
	}
	return region, nil
}

func (s *service) publish(ctx context.Context, action string, region core.Region) {
	err := s.event.Publish(ctx, core.Event{
		Channel:  core.MapChannel(region.WorldMapID),
		Type:     core.EventTypeRegion,
		Action:   action,
		MapID:    region.WorldMapID,
		Resource: region,
	})
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to publish region event",
			slog.String("error", err.Error()),
			slog.String("action", action),
			slog.String("module", "region"),
		)
	}
}

// Count returns the count number of regions
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// List returns every region
func (s *service) List(ctx context.Context) ([]core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// ListByMap returns the regions of a map
func (s *service) ListByMap(ctx context.Context, mapID uint) ([]core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.ListByMap")
	defer span.End()

	return s.repo.ListByMap(ctx, mapID)
}

// Get returns a region by id
func (s *service) Get(ctx context.Context, id uint) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Create validates and stores a new region
func (s *service) Create(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.Create")
	defer span.End()

	region, err := normalize(region)
	if err != nil {
		return core.Region{}, err
	}

	created, err := s.repo.Create(ctx, region)
	if err != nil {
		span.RecordError(err)
		return core.Region{}, errors.Wrap(err, "failed to create region")
	}

	s.publish(ctx, core.EventActionCreate, created)

	return created, nil
}

// Update replaces an existing region
func (s *service) Update(ctx context.Context, region core.Region) (core.Region, error) {
	ctx, span := tracer.Start(ctx, "Region.Service.Update")
	defer span.End()

	region, err := normalize(region)
	if err != nil {
		return core.Region{}, err
	}

	previous, err := s.repo.Get(ctx, region.ID)
	if err != nil {
		span.RecordError(err)
		return core.Region{}, errors.Wrap(err, "failed to get region")
	}

	updated, err := s.repo.Update(ctx, region)
	if err != nil {
		span.RecordError(err)
		return core.Region{}, errors.Wrap(err, "failed to update region")
	}

	// listeners of the old map see the region leave
	if previous.WorldMapID != updated.WorldMapID {
		s.publish(ctx, core.EventActionDelete, previous)
	}
	s.publish(ctx, core.EventActionUpdate, updated)

	return updated, nil
}

// Delete deletes a region
func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Region.Service.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete region")
	}

	s.publish(ctx, core.EventActionDelete, deleted)

	return nil
}
