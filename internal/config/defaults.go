package config

import (
	"time"
)

const (
	// DefaultChunkSize matches the original tool's upload chunk size.
	DefaultChunkSize = 1024
	// DefaultPollInterval matches the original tool's download poll timeout.
	DefaultPollInterval = 1 * time.Second
)

// GetDefaultConfig returns the built-in configuration used when no config
// file overrides anything.
func GetDefaultConfig() PodctlConfig {
	return PodctlConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
		},
		Transfer: TransferConfig{
			ChunkSize:    DefaultChunkSize,
			PollInterval: DefaultPollInterval,
		},
	}
}
