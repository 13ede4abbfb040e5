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

// Counter hands out sequential values. Registries sharing a Counter share
// its value space, so values never collide between them.
type Counter interface {
	// Next returns the current value and advances the counter by one.
	// Implementations must be safe for concurrent use.
	Next() Value
	// Peek returns the value the next call to Next would return.
	Peek() Value
}
