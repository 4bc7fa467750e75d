package editor

import (
	"strconv"

	"github.com/google/uuid"
)

// DraftID identifies a region drawn in a session that the server has not stored yet
type DraftID uuid.UUID

func (d DraftID) String() string {
	return uuid.UUID(d).String()
}

// Key identifies a region inside a session. Exactly one of ID and Draft is set.
type Key struct {
	ID    uint
	Draft DraftID
}

// Persisted reports whether the key refers to a server assigned id
func (k Key) Persisted() bool {
	return k.ID != 0
}

func (k Key) String() string {
	if k.Persisted() {
		return strconv.FormatUint(uint64(k.ID), 10)
	}
	return "draft:" + k.Draft.String()
}

// Entry is a region of the working copy together with its key
type Entry struct {
	Key    Key
	Region Region
}

// Region is a drawn region as held by the editor
type Region struct {
	Name        string
	Description string
	Color       string
	Path        string
}

// Overlay is the on-screen bounding box of the map image
type Overlay struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Style is how a region is painted on the overlay
type Style struct {
	Fill            string
	FillOpacity     float64
	Stroke          string
	StrokeWidth     float64
	StrokeDasharray string
}
