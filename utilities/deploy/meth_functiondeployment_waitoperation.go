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

package deploy

import (
	"fmt"
	"time"

	"github.com/merlinnot/firebase-tools/utilities/erm"
	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

// Retries is the max number of tentative to get the operation status on the cloud function deployment, to deal with transient
const Retries = 5

// waitOperation polls the operation status until the server reports it done
func (functionDeployment *FunctionDeployment) waitOperation(operationName string) (err error) {
	var operation *gcf.Operation
	for {
		time.Sleep(functionDeployment.Core.PollIntervalSec * time.Second)
		for tentative := 0; tentative < Retries; tentative++ {
			operation, err = functionDeployment.Core.Client.GetOperation(functionDeployment.Core.Ctx, operationName)
			if err == nil {
				break
			}
			if erm.IsNotTransientElseWait(err, functionDeployment.Core.PollIntervalSec) {
				return err
			}
		}
		if err != nil {
			return err
		}
		if operation.Done {
			break
		}
	}
	if operation.Error != nil {
		return fmt.Errorf("function deployment error code %d %s", operation.Error.Code, operation.Error.Message)
	}
	return nil
}
