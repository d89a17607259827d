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

package erm

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnitError(t *testing.T) {
	originalError := errors.New("backend blew up")
	var testCases = []struct {
		name           string
		deploymentErr  *Error
		expectedOutput string
	}{
		{
			"withOriginal",
			&Error{Message: "Failed to create function fooBar", Original: originalError},
			"Failed to create function fooBar: backend blew up",
		},
		{
			"withoutOriginal",
			&Error{Message: "Failed to delete function fooBar"},
			"Failed to delete function fooBar",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		testName := fmt.Sprintf("%s => %s", tc.name, tc.expectedOutput)
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			if tc.deploymentErr.Error() != tc.expectedOutput {
				t.Errorf("got %s, want %s", tc.deploymentErr.Error(), tc.expectedOutput)
			}
		})
	}
}

func TestUnitErrorUnwrap(t *testing.T) {
	t.Parallel()
	originalError := errors.New("quota exceeded")
	deploymentError := &Error{Message: "Failed to update function fooBar", Original: originalError}
	if !errors.Is(deploymentError, originalError) {
		t.Errorf("errors.Is does not reach the original cause")
	}
	if deploymentError.Unwrap() != originalError {
		t.Errorf("Unwrap does not return the original cause identity")
	}
}
