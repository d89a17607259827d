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

	"google.golang.org/api/googleapi"
)

// StatusCode returns the HTTP status code nested in the error chain, zero when there is none
func StatusCode(err error) (statusCode int) {
	var googleAPIError *googleapi.Error
	if errors.As(err, &googleAPIError) {
		return googleAPIError.Code
	}
	return 0
}
