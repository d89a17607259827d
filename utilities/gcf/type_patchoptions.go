// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gcf

// PatchOptions is the sparse set of fields a partial update intends to change.
// Source, Labels and Trigger are always sent, Runtime, AvailableMemoryMb and Timeout only when supplied
type PatchOptions struct {
	Source            SourceCode
	Labels            map[string]string
	Trigger           Trigger
	Runtime           string
	AvailableMemoryMb int64
	Timeout           string
}
