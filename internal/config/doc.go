// Package config provides configuration management for podctl.
//
// Configuration is loaded in two layers, with the later layer overriding the
// earlier one:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures podctl works out-of-the-box
//
//  2. User Configuration (~/.config/podctl/config.yaml)
//     - User-specific overrides, all fields optional
//
// The file is plain YAML:
//
//	globalSettings:
//	  logLevel: debug
//	transfer:
//	  chunkSize: 4096
//	  pollInterval: 500ms
//
// Transfer tuning exists because the chunk size and poll interval of the
// file-transfer engine are arbitrary constants, not protocol requirements;
// exposing them avoids hard-coding magic numbers the way the predecessor
// tool did.
package config
