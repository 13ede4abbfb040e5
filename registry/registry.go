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

package registry

import (
	"context"
	"log/slog"
	"sync"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

// New constructs a Registry that draws values from cfg.Counter and adds
// names in order. With no names the registry starts empty.
// Nil config fields fall back to config defaults.
func New(cfg apis.Config, names ...string) apis.Registry {
	cfg = config.Normalize(cfg)
	r := &registry{
		counter: cfg.Counter,
		log:     cfg.Logger,
		byName:  make(map[string]int),
		byValue: make(map[apis.Value]int),
	}
	r.Add(names...)
	return r
}

// registry is an ordered enum item set guarded by an RWMutex.
type registry struct {
	// counter is the value source, possibly shared with other registries.
	counter apis.Counter
	// log receives debug records.
	log *slog.Logger

	// mu guards items and both indexes.
	mu sync.RWMutex
	// items holds entries in insertion order.
	items []apis.Entry
	// byName maps a name to its index in items.
	byName map[string]int
	// byValue maps a value to the index of the first item holding it.
	byValue map[apis.Value]int
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Add assigns the next counter value to every name not yet present.
// Present names keep their value and do not consume a counter draw.
// The empty string is a name like any other.
func (r *registry) Add(names ...string) {
	if len(names) == 0 {
		return
	}

	ctx := context.Background()
	debug := r.log.Enabled(ctx, slog.LevelDebug)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if i, ok := r.byName[name]; ok {
			if debug {
				r.log.LogAttrs(ctx, slog.LevelDebug, "enum item already present",
					slog.String("name", name),
					slog.Uint64("value", uint64(r.items[i].Value)),
				)
			}
			continue
		}

		v := r.counter.Next()
		r.items = append(r.items, apis.Entry{Name: name, Value: v})
		i := len(r.items) - 1
		r.byName[name] = i
		if _, taken := r.byValue[v]; !taken {
			r.byValue[v] = i
		}
		if debug {
			r.log.LogAttrs(ctx, slog.LevelDebug, "enum item added",
				slog.String("name", name),
				slog.Uint64("value", uint64(v)),
			)
		}
	}
}

// NameOf returns the name bound to v, or ("", false).
func (r *registry) NameOf(v apis.Value) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byValue[v]
	if !ok {
		return "", false
	}
	return r.items[i].Name, true
}

// ValueOf returns the value bound to name.
func (r *registry) ValueOf(name string) (apis.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return 0, false
	}
	return r.items[i].Value, true
}

// Contains reports whether name has been added.
func (r *registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// Names returns the item names in insertion order.
func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.items))
	for i, e := range r.items {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the items in insertion order.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]apis.Entry, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of items.
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
