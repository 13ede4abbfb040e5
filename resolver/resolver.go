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

package resolver

import (
	"dirpx.dev/enumx/apis"
)

// New constructs an apis.Resolver that asks the given registries in order.
// Nil registries are ignored. The returned resolver is safe for concurrent use
// provided the registries themselves are.
func New(regs ...apis.Registry) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Registry, 0, len(regs))
	for _, r := range regs {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{regs: out}
}

// chain is an immutable, order-preserving resolver over a set of registries.
type chain struct {
	regs []apis.Registry
}

// NameOf runs registries in order until one knows v.
func (c chain) NameOf(v apis.Value) (string, bool) {
	for _, r := range c.regs {
		if name, ok := r.NameOf(v); ok {
			return name, true
		}
	}
	return "", false
}

// Owner returns the first registry that knows v.
func (c chain) Owner(v apis.Value) (apis.Registry, bool) {
	for _, r := range c.regs {
		if _, ok := r.NameOf(v); ok {
			return r, true
		}
	}
	return nil, false
}
