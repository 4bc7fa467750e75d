package character

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

	created, err := repo.Create(ctx, core.Character{
		Name:        "Captain Ilse",
		Type:        core.CharacterTypeEnemy,
		Location:    "The Iron Fleet",
		Description: "Pirate admiral",
		Notes:       "Owes the party a favor",
		Tags:        []string{"pirate"},
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, created.ID)
		assert.Equal(t, core.CharacterTypeEnemy, created.Type)
		assert.NotZero(t, created.CreatedAt)
	}

	updated, err := repo.Update(ctx, core.Character{
		ID:   created.ID,
		Name: "Admiral Ilse",
		Type: core.CharacterTypeNeutral,
		Tags: []string{},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Admiral Ilse", updated.Name)
		assert.Equal(t, core.CharacterTypeNeutral, updated.Type)
		// full replacement: omitted fields are cleared
		assert.Equal(t, "", updated.Location)
		assert.Equal(t, "", updated.Notes)
		assert.Empty(t, updated.Tags)
	}

	_, err = repo.Update(ctx, core.Character{ID: created.ID + 100, Name: "ghost", Type: core.CharacterTypeNPC})
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	characters, err := repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, characters, 1)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}

	err = repo.Delete(ctx, created.ID)
	assert.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))
}

func TestService(t *testing.T) {
	s := NewService(NewRepository(db, mc))

	created, err := s.Create(ctx, core.Character{Name: "Old Tom"})
	if assert.NoError(t, err) {
		assert.Equal(t, core.CharacterTypeNPC, created.Type)
		assert.NotNil(t, created.Tags)
	}

	_, err = s.Create(ctx, core.Character{Name: "Vermithrax", Type: "dragon"})
	assert.True(t, errors.Is(err, core.ErrorInvalidArgument{}))

	_, err = s.Update(ctx, core.Character{ID: created.ID, Name: "Old Tom", Type: "dragon"})
	assert.True(t, errors.Is(err, core.ErrorInvalidArgument{}))

	err = s.Delete(ctx, created.ID)
	assert.NoError(t, err)
}
