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

import "strconv"

// Value is the integer assigned to an enum item.
type Value uint64

// Entry is a single (name, value) binding held by a Registry.
type Entry struct {
	// Name is the enum item name.
	Name string
	// Value is the value assigned to Name.
	Value Value
}

// String returns "name=value".
func (e Entry) String() string {
	if e.Name == "" {
		return "<empty>=" + strconv.FormatUint(uint64(e.Value), 10)
	}
	return e.Name + "=" + strconv.FormatUint(uint64(e.Value), 10)
}
