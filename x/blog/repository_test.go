package blog

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

	created, err := repo.Create(ctx, core.Post{
		ID:      1000, // ignored, ids are assigned by the database
		Title:   "The Sunken Keep",
		Content: "Notes for session three.",
		Tags:    []string{"dungeon", "recap"},
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, created.ID)
		assert.NotEqual(t, uint(1000), created.ID)
		assert.Equal(t, "The Sunken Keep", created.Title)
		assert.Equal(t, []string{"dungeon", "recap"}, []string(created.Tags))
		assert.NotZero(t, created.CreatedAt)
		assert.NotZero(t, created.UpdatedAt)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}

	posts, err := repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, posts, 1)
		assert.Equal(t, created.ID, posts[0].ID)
	}

	updated, err := repo.Update(ctx, core.Post{
		ID:      created.ID,
		Title:   "The Sunken Keep (revised)",
		Content: "",
		Tags:    []string{},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "The Sunken Keep (revised)", updated.Title)
		assert.Equal(t, "", updated.Content)
		assert.Empty(t, updated.Tags)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	}

	_, err = repo.Update(ctx, core.Post{ID: created.ID + 100, Title: "ghost"})
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	err = repo.Delete(ctx, created.ID)
	assert.NoError(t, err)

	err = repo.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	posts, err = repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, posts, 0)
	}

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), count)
	}
}

func TestService(t *testing.T) {
	s := NewService(NewRepository(db, mc))

	created, err := s.Create(ctx, core.Post{
		Title: "Rumors",
		Tags:  []string{" rumor", "rumor", "", "npc"},
	})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"rumor", "npc"}, []string(created.Tags))
	}

	posts, err := s.List(ctx)
	if assert.NoError(t, err) {
		found := false
		for _, post := range posts {
			if post.ID == created.ID {
				found = true
			}
		}
		assert.True(t, found)
	}

	err = s.Delete(ctx, created.ID)
	assert.NoError(t, err)
}
