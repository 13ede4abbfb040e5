/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/counter"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
// Registries built with it draw from the process-wide counter and log nothing.
func DefaultConfig() apis.Config {
	return apis.Config{
		Counter: counter.Global(),
		Logger:  DiscardLogger(),
	}
}

// Normalize fills nil fields of cfg with their defaults.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.Counter == nil {
		cfg.Counter = counter.Global()
	}
	if cfg.Logger == nil {
		cfg.Logger = DiscardLogger()
	}
	return cfg
}

// discard is shared by every config that does not set a logger.
var discard = slog.New(slog.DiscardHandler)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return discard
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithCounter sets the value source.
// A nil counter resets to the process-wide counter.
func WithCounter(c apis.Counter) Option {
	return func(cfg *apis.Config) {
		if c == nil {
			cfg.Counter = counter.Global()
			return
		}
		cfg.Counter = c
	}
}

// WithIsolatedCounter gives the config a fresh counter starting at 0.
// Registries built from the resulting config share that counter with each
// other but not with the rest of the process.
func WithIsolatedCounter() Option {
	return func(cfg *apis.Config) {
		cfg.Counter = counter.New()
	}
}

// WithLogger sets the logger.
// A nil logger resets to the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *apis.Config) {
		if l == nil {
			cfg.Logger = DiscardLogger()
			return
		}
		cfg.Logger = l
	}
}
