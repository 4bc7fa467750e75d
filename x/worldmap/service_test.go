package worldmap

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/chronicle/core"
	"github.com/totegamma/chronicle/core/mock"
	"github.com/totegamma/chronicle/x/worldmap/mock"
)

type mocks struct {
	repo    *mock_worldmap.MockRepository
	regions *mock_core.MockRegionService
	upload  *mock_core.MockUploadService
	event   *mock_core.MockEventService
}

func setup(t *testing.T) (core.MapService, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    mock_worldmap.NewMockRepository(ctrl),
		regions: mock_core.NewMockRegionService(ctrl),
		upload:  mock_core.NewMockUploadService(ctrl),
		event:   mock_core.NewMockEventService(ctrl),
	}
	return NewService(m.repo, m.regions, m.upload, m.event), m
}

func TestServiceCreateRequiresImage(t *testing.T) {
	s, _ := setup(t)

	_, err := s.Create(context.Background(), core.WorldMap{Name: "Faerun"}, nil)
	assert.True(t, errors.Is(err, core.ErrorInvalidArgument{}))
	assert.Equal(t, "Image is required.", err.Error())
}

func TestServiceCreate(t *testing.T) {
	s, m := setup(t)

	image := &multipart.FileHeader{Filename: "faerun.png", Size: 10}
	upload := core.Upload{Filename: "1-x-faerun.png", URL: "/backend/uploads/1-x-faerun.png", Width: 800, Height: 600}

	m.upload.EXPECT().Save(gomock.Any(), image).Return(upload, nil)
	m.repo.EXPECT().Create(gomock.Any(), core.WorldMap{
		Name:        "Faerun",
		ImageURL:    upload.URL,
		ImageWidth:  800,
		ImageHeight: 600,
	}).Return(core.WorldMap{ID: 1, Name: "Faerun", ImageURL: upload.URL}, nil)

	created, err := s.Create(context.Background(), core.WorldMap{Name: "Faerun"}, image)
	if assert.NoError(t, err) {
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "/backend/uploads/1-x-faerun.png", created.ImageURL)
	}
}

func TestServiceCreateRemovesUploadOnFailure(t *testing.T) {
	s, m := setup(t)

	image := &multipart.FileHeader{Filename: "faerun.png", Size: 10}
	upload := core.Upload{Filename: "1-x-faerun.png", URL: "/backend/uploads/1-x-faerun.png", Path: "uploads/1-x-faerun.png"}

	m.upload.EXPECT().Save(gomock.Any(), image).Return(upload, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.WorldMap{}, errors.New("connection refused"))
	m.upload.EXPECT().Remove(gomock.Any(), upload).Return(nil)

	_, err := s.Create(context.Background(), core.WorldMap{Name: "Faerun"}, image)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestServiceGet(t *testing.T) {
	s, m := setup(t)

	regions := []core.Region{{ID: 1, WorldMapID: 4, Path: "M 0 0 Z"}}
	m.repo.EXPECT().Get(gomock.Any(), uint(4)).Return(core.WorldMap{ID: 4, Name: "Eberron"}, nil)
	m.regions.EXPECT().ListByMap(gomock.Any(), uint(4)).Return(regions, nil)

	worldMap, err := s.Get(context.Background(), 4)
	if assert.NoError(t, err) {
		assert.Equal(t, regions, worldMap.Regions)
	}

	m.repo.EXPECT().Get(gomock.Any(), uint(5)).Return(core.WorldMap{}, core.NewErrorNotFound())
	_, err = s.Get(context.Background(), 5)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))
}

func TestServiceDeletePublishes(t *testing.T) {
	s, m := setup(t)

	m.repo.EXPECT().Delete(gomock.Any(), uint(9)).Return(nil)
	m.event.EXPECT().Publish(gomock.Any(), core.Event{
		Channel: "map/9",
		Type:    core.EventTypeMap,
		Action:  core.EventActionDelete,
		MapID:   9,
	}).Return(nil)

	assert.NoError(t, s.Delete(context.Background(), 9))

	m.repo.EXPECT().Delete(gomock.Any(), uint(10)).Return(core.NewErrorNotFound())
	err := s.Delete(context.Background(), 10)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))
}
