package config

import (
	"time"
)

// PodctlConfig is the top-level configuration structure for podctl.
type PodctlConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Transfer       TransferConfig `yaml:"transfer"`
}

// GlobalSettings holds settings that apply to every command.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // "debug", "info", "warn", "error"
}

// TransferConfig tunes the tar-over-exec file transfer engine. The original
// tool hard-coded both values; they carry no protocol meaning, so they are
// plain configuration here.
type TransferConfig struct {
	// ChunkSize is the number of bytes written to the remote stdin per
	// iteration during upload.
	ChunkSize int `yaml:"chunkSize,omitempty"`
	// PollInterval bounds how long a download drain waits for new data
	// before re-checking the stream state.
	PollInterval time.Duration `yaml:"pollInterval,omitempty"`
}
