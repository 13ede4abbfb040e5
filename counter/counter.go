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

package counter

import (
	"sync/atomic"

	"dirpx.dev/enumx/apis"
)

// global is the process-wide counter. It starts at 0 and is never reset.
var global = &counter{}

// Global returns the process-wide counter shared by every registry that is
// not given a counter of its own.
func Global() apis.Counter {
	return global
}

// New returns an independent counter whose first value is 0.
func New() apis.Counter {
	return &counter{}
}

// NewFrom returns an independent counter whose first value is start.
func NewFrom(start apis.Value) apis.Counter {
	c := &counter{}
	c.next.Store(uint64(start))
	return c
}

// counter is a lock-free sequential value source.
type counter struct {
	next atomic.Uint64
}

// Ensure counter implements apis.Counter.
var _ apis.Counter = (*counter)(nil)

// Next returns the current value and advances by one.
func (c *counter) Next() apis.Value {
	return apis.Value(c.next.Add(1) - 1)
}

// Peek returns the value Next would hand out.
func (c *counter) Peek() apis.Value {
	return apis.Value(c.next.Load())
}
