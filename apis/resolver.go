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

// Resolver answers reverse lookups over a chain of registries.
// Typical use is a set of registries built on one shared Counter.
type Resolver interface {
	// NameOf returns the first name bound to v across the chain.
	NameOf(v Value) (name string, ok bool)
	// Owner returns the first registry that holds v.
	Owner(v Value) (reg Registry, ok bool)
}
