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

import "fmt"

// Error wraps a failed deployment action with the original cause and a structured context
type Error struct {
	Message  string
	Original error
	Context  map[string]interface{}
}

// Error renders the message followed by the original cause when there is one
func (deploymentError *Error) Error() string {
	if deploymentError.Original != nil {
		return fmt.Sprintf("%s: %v", deploymentError.Message, deploymentError.Original)
	}
	return deploymentError.Message
}

// Unwrap exposes the original cause to errors.Is and errors.As
func (deploymentError *Error) Unwrap() error {
	return deploymentError.Original
}
