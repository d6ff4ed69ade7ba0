//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the configuration of the hashing tools.
package env

import (
	"crypto/rand"
	"io"
)

// DefaultChunkSize is the default read size for hashing files.
const DefaultChunkSize = 64 * 1024

// DefaultLogLevel is the default log level of the hashing tools.
const DefaultLogLevel = "warn"

// Config defines the configuration for file hashing and the
// throughput report. Config must not be modified after being passed
// to any module. It is safe for concurrent use by multiple modules as
// they do not modify it.
type Config struct {
	// Rand seeds the benchmark input keystream.
	Rand io.Reader

	// ChunkSize is the number of bytes read from input at a time.
	ChunkSize int

	// LogLevel is the go-log level name, for example "debug".
	LogLevel string
}

// GetRandom returns the source of entropy for benchmark input.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetChunkSize returns the input read size. The size is rounded up
// to a multiple of 128 bytes, the largest hash block size, so that
// whole blocks are compressed directly from the read buffer.
func (config *Config) GetChunkSize() int {
	if config.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return (config.ChunkSize + 127) &^ 127
}

// GetLogLevel returns the log level name.
func (config *Config) GetLogLevel() string {
	if len(config.LogLevel) == 0 {
		return DefaultLogLevel
	}
	return config.LogLevel
}
