package core

import (
	"strconv"
)

// Event is the map channel packet model
type Event struct {
	Channel  string `json:"channel"` // e.g. map/12
	Type     string `json:"type"`    // region | map
	Action   string `json:"action"`  // create | update | delete
	MapID    uint   `json:"map_id"`
	Resource any    `json:"resource,omitempty"`
}

// MapChannel returns the pubsub channel name of a world map
func MapChannel(mapID uint) string {
	return "map/" + strconv.FormatUint(uint64(mapID), 10)
}

// Upload is a stored image file
type Upload struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Path     string `json:"-"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
