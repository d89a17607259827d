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

// Status carries the code and message of a failed operation
type Status struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// Operation is an asynchronous server side task handle.
// While Done is false neither Response nor Error is meaningful, once Done is true the server sets exactly one of them
type Operation struct {
	Name     string                 `json:"name"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Done     bool                   `json:"done"`
	Response map[string]interface{} `json:"response,omitempty"`
	Error    *Status                `json:"error,omitempty"`
}
