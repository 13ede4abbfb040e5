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

// Package enumx provides enumerated constants built at runtime.
//
// An enum is a Registry: an ordered set of names, each bound to a unique
// integer Value the moment it is added. Values never change once assigned,
// and a Registry can answer the reverse question "which name has this value".
//
//	var Kind = enumx.New("TYPE1", "TYPE2")
//
//	var (
//		Type1 = enumx.MustValue(Kind, "TYPE1")
//		Type2 = enumx.MustValue(Kind, "TYPE2")
//	)
//
//	if v == Type1 {
//		...
//	}
//
//	Kind.Add("TYPE3", "TYPE1") // TYPE1 is already present and is skipped
//	name, ok := Kind.NameOf(Type1) // "TYPE1", true
//
// # Values
//
// Values come from a Counter. Unless told otherwise, every Registry draws
// from one process-wide counter, so values are unique across all registries
// in the process and a value alone is enough to find its enum. Give a set of
// registries their own counter (config.WithCounter) to scope uniqueness to
// that set, or one counter each to number every enum from 0.
//
// Adding a name that is already present is a no-op: its value is kept and
// the counter is not advanced. The empty string is an ordinary name.
//
// # Packages
//
//   - apis: Value, Entry, Config and the Counter/Registry/Resolver interfaces.
//   - counter: the process-wide counter and independent counters.
//   - config: defaults and functional options for apis.Config.
//   - registry: the Registry implementation.
//   - resolver: reverse lookup across several registries.
//
// # Global configuration
//
// New uses a process-wide default Config, held as an immutable snapshot
// behind an atomic pointer. Reads are lock-free; SetConfig publishes a new
// snapshot. Registries already built keep the config they were built with.
//
// # Concurrency model
//
// Counters are atomic. A Registry guards its items with an RWMutex: lookups
// run in parallel, and Add holds the write lock for the whole call so that
// values inside one registry increase in insertion order.
package enumx
