package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfig(t *testing.T) {
	config := SetupConfig(ConfigInput{})
	assert.Equal(t, DefaultUploadDir, config.UploadDir)
	assert.Equal(t, DefaultUploadPrefix, config.UploadPrefix)
	assert.Equal(t, int64(defaultMaxUploadSize), config.MaxUploadSize)
	assert.Equal(t, DefaultInternalURL, config.InternalURL)
	assert.Equal(t, DefaultPublicURL, config.PublicURL)
	assert.Equal(t, "", config.APIURLOverride)

	config = SetupConfig(ConfigInput{
		UploadDir:      "/var/lib/chronicle",
		UploadPrefix:   "/static/",
		MaxUploadSize:  1024,
		APIURLOverride: "http://api.internal:8000/",
	})
	assert.Equal(t, "/var/lib/chronicle", config.UploadDir)
	assert.Equal(t, "/static", config.UploadPrefix)
	assert.Equal(t, int64(1024), config.MaxUploadSize)
	assert.Equal(t, "http://api.internal:8000", config.APIURLOverride)
}
