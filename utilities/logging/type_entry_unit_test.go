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

package logging

import (
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var testCases = []struct {
		name     string
		entry    Entry
		contains []string
	}{
		{
			"defaultSeverityIsInfo",
			Entry{Message: "deployment started"},
			[]string{`"severity":"INFO"`, `"message":"deployment started"`},
		},
		{
			"explicitSeverityKept",
			Entry{Severity: "WARNING", Message: "failed to create function fooBar"},
			[]string{`"severity":"WARNING"`},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rendered := tc.entry.String()
			for _, fragment := range tc.contains {
				if !strings.Contains(rendered, fragment) {
					t.Errorf("got %s, want it to contain %s", rendered, fragment)
				}
			}
		})
	}
}
