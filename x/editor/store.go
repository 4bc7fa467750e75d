//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mock/store.go
package editor

import (
	"context"

	"github.com/totegamma/chronicle/core"
)

// RegionStore persists regions. The api client satisfies it.
type RegionStore interface {
	CreateRegion(ctx context.Context, region core.Region) (core.Region, error)
	DeleteRegion(ctx context.Context, id uint) error
}
