package worldmap

import (
	"context"
	"log/slog"
	"mime/multipart"

	"github.com/pkg/errors"

	"github.com/totegamma/chronicle/core"
)

type service struct {
	repo    Repository
	regions core.RegionService
	upload  core.UploadService
	event   core.EventService
}

// NewService creates a new world map service
func NewService(
	repo Repository,
	regions core.RegionService,
	upload core.UploadService,
	event core.EventService,
) core.MapService {
	return &service{
		repo,
		regions,
		upload,
		event,
	}
}

// Count returns the count number of maps
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// List returns every map. Regions are not included
func (s *service) List(ctx context.Context) ([]core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Get returns a map with its regions
func (s *service) Get(ctx context.Context, id uint) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.Get")
	defer span.End()

	worldMap, err := s.repo.Get(ctx, id)
	if err != nil {
		return core.WorldMap{}, err
	}

	regions, err := s.regions.ListByMap(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.WorldMap{}, errors.Wrap(err, "failed to load regions")
	}
	worldMap.Regions = regions

	return worldMap, nil
}

// Create stores the image and inserts the map row.
// The stored image is removed again when the insert fails.
func (s *service) Create(ctx context.Context, worldMap core.WorldMap, image *multipart.FileHeader) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.Create")
	defer span.End()

	if image == nil {
		return core.WorldMap{}, core.NewErrorInvalidArgument("Image is required.")
	}

	upload, err := s.upload.Save(ctx, image)
	if err != nil {
		span.RecordError(err)
		return core.WorldMap{}, err
	}

	worldMap.ImageURL = upload.URL
	worldMap.ImageWidth = upload.Width
	worldMap.ImageHeight = upload.Height

	created, err := s.repo.Create(ctx, worldMap)
	if err != nil {
		span.RecordError(err)
		if rerr := s.upload.Remove(ctx, upload); rerr != nil {
			slog.ErrorContext(
				ctx, "failed to remove orphaned upload",
				slog.String("error", rerr.Error()),
				slog.String("file", upload.Filename),
				slog.String("module", "worldmap"),
			)
		}
		return core.WorldMap{}, errors.Wrap(err, "failed to create map")
	}

	return created, nil
}

// Update replaces the editable fields of a map
func (s *service) Update(ctx context.Context, worldMap core.WorldMap) (core.WorldMap, error) {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.Update")
	defer span.End()

	updated, err := s.repo.Update(ctx, worldMap)
	if err != nil {
		span.RecordError(err)
		return core.WorldMap{}, err
	}

	err = s.event.Publish(ctx, core.Event{
		Channel:  core.MapChannel(updated.ID),
		Type:     core.EventTypeMap,
		Action:   core.EventActionUpdate,
		MapID:    updated.ID,
		Resource: updated,
	})
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to publish map event",
			slog.String("error", err.Error()),
			slog.String("module", "worldmap"),
		)
	}

	return updated, nil
}

// Delete removes a map together with its regions
func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "WorldMap.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.event.Publish(ctx, core.Event{
		Channel: core.MapChannel(id),
		Type:    core.EventTypeMap,
		Action:  core.EventActionDelete,
		MapID:   id,
	})
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to publish map event",
			slog.String("error", err.Error()),
			slog.String("module", "worldmap"),
		)
	}

	return nil
}
