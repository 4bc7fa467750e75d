//go:build wireinject

package chronicle

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/chronicle/core"

	"github.com/totegamma/chronicle/x/blog"
	"github.com/totegamma/chronicle/x/character"
	"github.com/totegamma/chronicle/x/region"
	"github.com/totegamma/chronicle/x/socket"
	"github.com/totegamma/chronicle/x/upload"
	"github.com/totegamma/chronicle/x/worldmap"
)

// Lv0
var eventServiceProvider = wire.NewSet(socket.NewService)
var uploadServiceProvider = wire.NewSet(upload.NewService)
var blogServiceProvider = wire.NewSet(blog.NewService, blog.NewRepository)
var characterServiceProvider = wire.NewSet(character.NewService, character.NewRepository)

// Lv1
var regionServiceProvider = wire.NewSet(region.NewService, region.NewRepository, SetupEventService)

// Lv2
var mapServiceProvider = wire.NewSet(
	worldmap.NewService,
	worldmap.NewRepository,
	SetupRegionService,
	SetupUploadService,
	SetupEventService,
)

// -----------

func SetupEventService(rdb *redis.Client) core.EventService {
	wire.Build(eventServiceProvider)
	return nil
}

func SetupUploadService(config core.Config) core.UploadService {
	wire.Build(uploadServiceProvider)
	return nil
}

func SetupBlogService(db *gorm.DB, mc *memcache.Client) core.BlogService {
	wire.Build(blogServiceProvider)
	return nil
}

func SetupCharacterService(db *gorm.DB, mc *memcache.Client) core.CharacterService {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupRegionService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) core.RegionService {
	wire.Build(regionServiceProvider)
	return nil
}

func SetupMapService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.MapService {
	wire.Build(mapServiceProvider)
	return nil
}

func SetupSocketHandler(rdb *redis.Client) socket.Handler {
	wire.Build(socket.NewHandler)
	return nil
}
