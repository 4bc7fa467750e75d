package core

import (
	"strings"
)

// ConfigInput is the user facing configuration section
type ConfigInput struct {
	UploadDir      string `yaml:"uploadDir" env:"UPLOAD_DIR"`
	UploadPrefix   string `yaml:"uploadPrefix" env:"UPLOAD_PREFIX"`
	MaxUploadSize  int64  `yaml:"maxUploadSize" env:"MAX_UPLOAD_SIZE"`
	InternalURL    string `yaml:"internalURL" env:"INTERNAL_API_URL"`
	PublicURL      string `yaml:"publicURL" env:"PUBLIC_API_URL"`
	APIURLOverride string `yaml:"apiURLOverride" env:"NEXT_PUBLIC_API_URL"`
}

// Config is the resolved runtime configuration shared by the modules
type Config struct {
	UploadDir      string
	UploadPrefix   string
	MaxUploadSize  int64
	InternalURL    string
	PublicURL      string
	APIURLOverride string
}

const defaultMaxUploadSize = 32 << 20

func SetupConfig(base ConfigInput) Config {

	config := Config{
		UploadDir:      base.UploadDir,
		UploadPrefix:   strings.TrimRight(base.UploadPrefix, "/"),
		MaxUploadSize:  base.MaxUploadSize,
		InternalURL:    strings.TrimRight(base.InternalURL, "/"),
		PublicURL:      strings.TrimRight(base.PublicURL, "/"),
		APIURLOverride: strings.TrimRight(base.APIURLOverride, "/"),
	}

	if config.UploadDir == "" {
		config.UploadDir = DefaultUploadDir
	}
	if config.UploadPrefix == "" {
		config.UploadPrefix = DefaultUploadPrefix
	}
	if config.MaxUploadSize <= 0 {
		config.MaxUploadSize = defaultMaxUploadSize
	}
	if config.InternalURL == "" {
		config.InternalURL = DefaultInternalURL
	}
	if config.PublicURL == "" {
		config.PublicURL = DefaultPublicURL
	}

	return config
}
