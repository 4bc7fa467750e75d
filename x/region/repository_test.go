package region

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/totegamma/chronicle/core"
	"github.com/totegamma/chronicle/internal/testutil"
)

var ctx = context.Background()
var db *gorm.DB
var mc *memcache.Client

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {
	repo := NewRepository(db, mc)

	worldMap := core.WorldMap{Name: "Faerun", ImageURL: "/backend/uploads/faerun.png"}
	assert.NoError(t, db.Create(&worldMap).Error)

	created, err := repo.Create(ctx, core.Region{
		WorldMapID:  worldMap.ID,
		Name:        "Sword Coast",
		Description: "Western shore",
		Color:       "#ff0000",
		Path:        "M 10 10 L 50 10 L 50 40 Z",
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, created.ID)
	}

	_, err = repo.Create(ctx, core.Region{WorldMapID: worldMap.ID + 1000, Name: "Nowhere", Path: "M 0 0 Z"})
	assert.True(t, errors.Is(err, core.ErrorInvalidArgument{}))

	fetched, err := repo.Get(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "M 10 10 L 50 10 L 50 40 Z", fetched.Path)
	}

	updated, err := repo.Update(ctx, core.Region{
		ID:         created.ID,
		WorldMapID: worldMap.ID,
		Name:       "Sword Coast North",
		Color:      "#00ff00",
		Path:       "M 1 1 L 2 2 Z",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Sword Coast North", updated.Name)
		assert.Equal(t, "", updated.Description)
		assert.Equal(t, "M 1 1 L 2 2 Z", updated.Path)
	}

	_, err = repo.Update(ctx, core.Region{ID: created.ID + 100, WorldMapID: worldMap.ID, Path: "M 0 0 Z"})
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	regions, err := repo.ListByMap(ctx, worldMap.ID)
	if assert.NoError(t, err) {
		assert.Len(t, regions, 1)
	}

	empty, err := repo.ListByMap(ctx, worldMap.ID+1000)
	if assert.NoError(t, err) {
		assert.NotNil(t, empty)
		assert.Len(t, empty, 0)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, worldMap.ID, deleted.WorldMapID)
	}

	_, err = repo.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	_, err = repo.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))
}

func TestCascade(t *testing.T) {
	repo := NewRepository(db, mc)

	worldMap := core.WorldMap{Name: "Underdark", ImageURL: "/backend/uploads/underdark.png"}
	assert.NoError(t, db.Create(&worldMap).Error)

	_, err := repo.Create(ctx, core.Region{WorldMapID: worldMap.ID, Name: "Menzoberranzan", Path: "M 5 5 L 6 6 Z"})
	assert.NoError(t, err)

	assert.NoError(t, db.Delete(&core.WorldMap{}, "id = ?", worldMap.ID).Error)

	regions, err := repo.ListByMap(ctx, worldMap.ID)
	if assert.NoError(t, err) {
		assert.Len(t, regions, 0)
	}
}
