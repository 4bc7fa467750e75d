package client

import (
	"github.com/totegamma/chronicle/core"
)

// ExecutionContext tells where the caller runs
type ExecutionContext int

const (
	// ServerSide is code running next to the api, e.g. inside the compose network
	ServerSide ExecutionContext = iota
	// BrowserSide is code running on the user's machine
	BrowserSide
)

// ResolveBaseURL picks the api base url reachable from the execution context.
// On the server an explicit override wins over the internal service url.
// The browser always uses the public url.
func ResolveBaseURL(ec ExecutionContext, config core.Config) string {
	if ec == BrowserSide {
		if config.PublicURL != "" {
			return config.PublicURL
		}
		return core.DefaultPublicURL
	}

	if config.APIURLOverride != "" {
		return config.APIURLOverride
	}
	if config.InternalURL != "" {
		return config.InternalURL
	}
	return core.DefaultInternalURL
}
