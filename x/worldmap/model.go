package worldmap

import (
	"github.com/totegamma/chronicle/core"
)

type mapRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ImageURLAlt string `json:"imageUrl"` // accepted when image_url is absent
}

func (r mapRequest) imageURL() string {
	if r.ImageURL != "" {
		return r.ImageURL
	}
	return r.ImageURLAlt
}

// mapDetail always carries the regions array, even when empty
type mapDetail struct {
	core.WorldMap
	Regions []core.Region `json:"regions"`
}
