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

import (
	"fmt"
	"net/http"

	"github.com/merlinnot/firebase-tools/utilities/erm"
)

// QuotaExceededRemediation is the actionable hint surfaced when a deployment hits the rate limit
const QuotaExceededRemediation = "You have exceeded your deployment quota, please deploy your functions in smaller batches and try again"

// failAction normalizes a create, update or delete failure: one warning, the underlying message,
// the quota remediation hint on 429, then a typed error carrying the original cause and the function name
func (client *Client) failAction(target Target, action string, err error) error {
	client.Logger.Warning(fmt.Sprintf("failed to %s function %s", action, target.FunctionName))
	client.Logger.Debug(err.Error())
	if erm.StatusCode(err) == http.StatusTooManyRequests {
		client.Logger.Info(QuotaExceededRemediation)
	}
	return &erm.Error{
		Message:  fmt.Sprintf("Failed to %s function %s", action, target.FunctionName),
		Original: err,
		Context:  map[string]interface{}{"function": target.FunctionName},
	}
}
