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

package enumx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

// init publishes the default configuration.
func init() {
	st.Store(&state{cfg: config.DefaultConfig()})
}

var (
	// ErrNilRegistry is returned when a helper is given a nil registry.
	ErrNilRegistry = errors.New("enumx: nil registry")
	// ErrUnknownName is returned when a name is not an item of the registry.
	ErrUnknownName = errors.New("enumx: unknown name")
	// ErrUnknownValue is returned when no item of the registry holds a value.
	ErrUnknownValue = errors.New("enumx: unknown value")
)

// New builds a Registry from names using the global configuration.
func New(names ...string) apis.Registry {
	return registry.New(st.Load().cfg, names...)
}

// NewWithConfig builds a Registry from names using cfg.
// Nil fields of cfg fall back to config defaults.
func NewWithConfig(cfg apis.Config, names ...string) apis.Registry {
	return registry.New(cfg, names...)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration used by New.
// Nil fields of cfg fall back to config defaults.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(&state{cfg: config.Normalize(cfg)})
}

// Parse returns the value bound to name in reg.
func Parse(reg apis.Registry, name string) (apis.Value, error) {
	if reg == nil {
		return 0, ErrNilRegistry
	}
	v, ok := reg.ValueOf(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return v, nil
}

// Format returns the name bound to v in reg.
func Format(reg apis.Registry, v apis.Value) (string, error) {
	if reg == nil {
		return "", ErrNilRegistry
	}
	name, ok := reg.NameOf(v)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownValue, v)
	}
	return name, nil
}

// MustValue is like Parse but panics on error.
// It is meant for package-level declarations of enum constants.
func MustValue(reg apis.Registry, name string) apis.Value {
	v, err := Parse(reg, name)
	if err != nil {
		panic(err)
	}
	return v
}

// buildMu serializes writers so snapshots are published one at a time.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Never mutate fields of a published state; store a new one instead.
type state struct {
	// cfg is the configuration used by New.
	cfg apis.Config
}
