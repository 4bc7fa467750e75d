//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"mime/multipart"
)

type BlogService interface {
	List(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, post Post) (Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type CharacterService interface {
	List(ctx context.Context) ([]Character, error)
	Create(ctx context.Context, character Character) (Character, error)
	Update(ctx context.Context, character Character) (Character, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type MapService interface {
	List(ctx context.Context) ([]WorldMap, error)
	Get(ctx context.Context, id uint) (WorldMap, error)
	Create(ctx context.Context, worldMap WorldMap, image *multipart.FileHeader) (WorldMap, error)
	Update(ctx context.Context, worldMap WorldMap) (WorldMap, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type RegionService interface {
	List(ctx context.Context) ([]Region, error)
	ListByMap(ctx context.Context, mapID uint) ([]Region, error)
	Get(ctx context.Context, id uint) (Region, error)
	Create(ctx context.Context, region Region) (Region, error)
	Update(ctx context.Context, region Region) (Region, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type UploadService interface {
	Save(ctx context.Context, file *multipart.FileHeader) (Upload, error)
	Remove(ctx context.Context, upload Upload) error
}

type EventService interface {
	Publish(ctx context.Context, event Event) error
}
