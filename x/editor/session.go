// Package editor implements the region drawing workflow of the map detail view
package editor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/chronicle/core"
)

var tracer = otel.Tracer("editor")

var (
	ErrNotDrawing   = errors.New("not in drawing mode")
	ErrEmptyPath    = errors.New("path is empty")
	ErrNameRequired = errors.New("region name is required")
	ErrUnknownKey   = errors.New("no region with this key")
)

const (
	strokeWidth     = 2
	draftDasharray  = "5,5"
	fillOpacity     = 1.0
	normalFillAlpha = "80" // half transparent, dropped on hover
)

// Session is the editing state of one map.
// A Session is not safe for concurrent use.
type Session struct {
	worldMap core.WorldMap
	entries  []Entry
	deleted  []uint

	drawing bool
	path    core.RegionPath

	candidate Region
	hovered   *Key
}

// NewSession starts editing a working copy of the map and its regions
func NewSession(worldMap core.WorldMap) *Session {
	entries := make([]Entry, 0, len(worldMap.Regions))
	for _, region := range worldMap.Regions {
		entries = append(entries, Entry{
			Key: Key{ID: region.ID},
			Region: Region{
				Name:        region.Name,
				Description: region.Description,
				Color:       region.Color,
				Path:        region.Path,
			},
		})
	}
	worldMap.Regions = nil

	return &Session{
		worldMap:  worldMap,
		entries:   entries,
		candidate: Region{Color: core.DefaultRegionColor},
	}
}

// MapID returns the id of the edited map
func (s *Session) MapID() uint {
	return s.worldMap.ID
}

// Drawing reports whether clicks are being captured
func (s *Session) Drawing() bool {
	return s.drawing
}

// Path returns the path captured so far
func (s *Session) Path() string {
	return s.path.String()
}

// Candidate returns the fields the next finished region will get
func (s *Session) Candidate() Region {
	return s.candidate
}

// SetCandidate sets name, description and color of the region being drawn.
// An empty color falls back to the default.
func (s *Session) SetCandidate(name, description, color string) {
	if color == "" {
		color = core.DefaultRegionColor
	}
	s.candidate = Region{Name: name, Description: description, Color: color}
}

// Regions returns the working copy in display order
func (s *Session) Regions() []Entry {
	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

// BeginDrawing clears the path buffer and arms click capture
func (s *Session) BeginDrawing() {
	s.path = core.RegionPath{}
	s.drawing = true
}

// Click appends a point relative to the overlay's top-left corner.
// Coordinates stay in on-screen pixels of the current render size.
func (s *Session) Click(x, y float64, overlay Overlay) error {
	if !s.drawing {
		return ErrNotDrawing
	}
	s.path.Append(core.Point{X: x - overlay.Left, Y: y - overlay.Top})
	return nil
}

// Finish closes the captured path and adds it to the working copy as a draft
func (s *Session) Finish() (Key, error) {
	if !s.drawing {
		return Key{}, ErrNotDrawing
	}
	if s.path.Empty() {
		return Key{}, ErrEmptyPath
	}
	if s.candidate.Name == "" {
		return Key{}, ErrNameRequired
	}

	s.path.Close()

	key := Key{Draft: DraftID(uuid.New())}
	region := s.candidate
	region.Path = s.path.String()
	s.entries = append(s.entries, Entry{Key: key, Region: region})

	s.drawing = false
	s.path = core.RegionPath{}
	s.candidate = Region{Color: core.DefaultRegionColor}

	return key, nil
}

// Cancel discards the path buffer and leaves the working copy untouched
func (s *Session) Cancel() {
	s.drawing = false
	s.path = core.RegionPath{}
}

// Delete removes a region from the working copy.
// Stored regions are queued and deleted on the server by Sync.
func (s *Session) Delete(key Key) error {
	for i, entry := range s.entries {
		if entry.Key != key {
			continue
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		if key.Persisted() {
			s.deleted = append(s.deleted, key.ID)
		}
		if s.hovered != nil && *s.hovered == key {
			s.hovered = nil
		}
		return nil
	}
	return ErrUnknownKey
}

// Hover marks a region as hovered. A nil key clears it
func (s *Session) Hover(key *Key) {
	if key == nil {
		s.hovered = nil
		return
	}
	k := *key
	s.hovered = &k
}

// Pending reports whether Sync has work to do
func (s *Session) Pending() bool {
	if len(s.deleted) > 0 {
		return true
	}
	for _, entry := range s.entries {
		if !entry.Key.Persisted() {
			return true
		}
	}
	return false
}

// Sync stores drafts and issues queued deletions.
// It stops at the first failure; whatever was not synced stays pending.
func (s *Session) Sync(ctx context.Context, store RegionStore) error {
	ctx, span := tracer.Start(ctx, "Editor.Session.Sync")
	defer span.End()

	for len(s.deleted) > 0 {
		id := s.deleted[0]
		err := store.DeleteRegion(ctx, id)
		if err != nil && !errors.Is(err, core.ErrorNotFound{}) {
			span.RecordError(err)
			return errors.Wrap(err, fmt.Sprintf("failed to delete region %d", id))
		}
		s.deleted = s.deleted[1:]
	}

	for i := range s.entries {
		entry := &s.entries[i]
		if entry.Key.Persisted() {
			continue
		}

		created, err := store.CreateRegion(ctx, core.Region{
			WorldMapID:  s.worldMap.ID,
			Name:        entry.Region.Name,
			Description: entry.Region.Description,
			Color:       entry.Region.Color,
			Path:        entry.Region.Path,
		})
		if err != nil {
			span.RecordError(err)
			return errors.Wrap(err, fmt.Sprintf("failed to store region %s", entry.Key))
		}

		if s.hovered != nil && *s.hovered == entry.Key {
			s.hovered = &Key{ID: created.ID}
		}
		entry.Key = Key{ID: created.ID}
		entry.Region.Color = created.Color
	}

	return nil
}

// Style returns how a region of the working copy is painted
func (s *Session) Style(key Key) (Style, error) {
	for _, entry := range s.entries {
		if entry.Key != key {
			continue
		}
		color := entry.Region.Color
		if color == "" {
			color = core.DefaultRegionColor
		}
		if s.hovered != nil && *s.hovered == key {
			return Style{
				Fill:        color,
				FillOpacity: fillOpacity,
				Stroke:      color,
				StrokeWidth: strokeWidth,
			}, nil
		}
		return Style{
			Fill:        color + normalFillAlpha,
			FillOpacity: fillOpacity,
			Stroke:      color,
			StrokeWidth: strokeWidth,
		}, nil
	}
	return Style{}, ErrUnknownKey
}

// DraftStyle returns how the path being drawn is painted
func (s *Session) DraftStyle() Style {
	return Style{
		Fill:            "none",
		Stroke:          s.candidate.Color,
		StrokeWidth:     strokeWidth,
		StrokeDasharray: draftDasharray,
	}
}
