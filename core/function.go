package core

import (
	"strconv"
)

// ParseID parses a resource id taken from a request path
func ParseID(raw string) (uint, error) {
	if raw == "" {
		return 0, NewErrorInvalidArgument("id is required")
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, NewErrorInvalidArgument("invalid id: " + raw)
	}
	return uint(id), nil
}
