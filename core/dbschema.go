package core

import (
	"time"

	"github.com/lib/pq"
)

// Post is a campaign blog entry
// mutable
type Post struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string         `json:"title" gorm:"type:text"`
	Content   string         `json:"content" gorm:"type:text"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:now()"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"type:timestamp with time zone;not null;default:now()"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// Character is a member of the campaign roster
// mutable, no modification tracking
type Character struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"type:text"`
	Type        CharacterType  `json:"type" gorm:"type:text;not null;default:'npc'"`
	Location    string         `json:"location" gorm:"type:text"`
	Description string         `json:"description" gorm:"type:text"`
	Notes       string         `json:"notes" gorm:"type:text"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:now()"`
}

func (Character) TableName() string {
	return "characters"
}

// WorldMap is an uploaded map image owning zero or more regions.
// Regions are never stored inline; they are loaded by a second query on detail reads.
type WorldMap struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	ImageWidth  int       `json:"image_width" gorm:"type:integer;default:0"`
	ImageHeight int       `json:"image_height" gorm:"type:integer;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"->;<-:create;type:timestamp with time zone;not null;default:now()"`
	Regions     []Region  `json:"regions,omitempty" gorm:"foreignKey:WorldMapID;constraint:OnDelete:CASCADE"`
}

func (WorldMap) TableName() string {
	return "world_maps"
}

// Region is a drawn polygon on a world map.
// Its lifetime is bound to the owning map by the foreign key (ON DELETE CASCADE).
type Region struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	WorldMapID  uint   `json:"world_map_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`
	Color       string `json:"color" gorm:"type:text"`
	Path        string `json:"path" gorm:"type:text"` // e.g. M 10 10 L 50 10 L 50 40 Z
}

func (Region) TableName() string {
	return "map_regions"
}
