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

package apis

// Registry is an ordered set of enum items. Names map to values drawn from
// a Counter; once assigned, a value never changes.
type Registry interface {
	// Add assigns values to names not yet present, in the given order.
	// Present names are skipped without drawing from the counter.
	Add(names ...string)
	// NameOf returns the name bound to v, if any.
	NameOf(v Value) (name string, ok bool)
	// ValueOf returns the value bound to name, if any.
	ValueOf(name string) (v Value, ok bool)
	// Contains reports whether name is an enum item of this registry.
	Contains(name string) bool
	// Names returns the item names in insertion order.
	Names() []string
	// Entries returns a snapshot of the items in insertion order.
	Entries() []Entry
	// Len returns the number of items.
	Len() int
}
