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

// buildUpdateMask lists the field paths a patch intends to change: the source reference, name and
// labels always, runtime, memory and timeout when supplied, then either one eventTrigger.<subkey>
// path per populated event trigger sub field or the single httpsTrigger path, never both
func buildUpdateMask(patchOptions PatchOptions) (updateMask []string) {
	updateMask = []string{sourceMaskPath(patchOptions.Source), "name", "labels"}
	if patchOptions.Runtime != "" {
		updateMask = append(updateMask, "runtime")
	}
	if patchOptions.AvailableMemoryMb != 0 {
		updateMask = append(updateMask, "availableMemoryMb")
	}
	if patchOptions.Timeout != "" {
		updateMask = append(updateMask, "timeout")
	}
	switch trigger := patchOptions.Trigger.(type) {
	case EventTrigger:
		for _, key := range trigger.wireKeys() {
			updateMask = append(updateMask, "eventTrigger."+key)
		}
	default:
		updateMask = append(updateMask, "httpsTrigger")
	}
	return updateMask
}

func sourceMaskPath(sourceCode SourceCode) string {
	switch sourceCode.(type) {
	case SourceArchive:
		return "sourceArchiveUrl"
	case SourceRepository:
		return "sourceRepository"
	default:
		return "sourceUploadUrl"
	}
}
