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
	"log"
	"net/http"

	"github.com/merlinnot/firebase-tools/utilities/erm"
	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

// createPatchCloudFunction creates the cloud function, patches it instead when it already exists,
// then waits for the server side operation to complete
func (functionDeployment *FunctionDeployment) createPatchCloudFunction() (err error) {
	var operationName string
	cloudFunction := functionDeployment.Artifacts.CloudFunction
	operation, err := functionDeployment.Core.Client.CreateFunction(functionDeployment.Core.Ctx,
		functionDeployment.Artifacts.Target, cloudFunction)
	if err != nil {
		if erm.StatusCode(err) != http.StatusConflict {
			return err
		}
		log.Printf("%s gcf patch existing cloud function %s", functionDeployment.Core.InstanceName, cloudFunction.Name)
		operationRecord, err := functionDeployment.Core.Client.PatchFunction(functionDeployment.Core.Ctx,
			functionDeployment.Artifacts.Target, gcf.PatchOptions{
				Source:            cloudFunction.Source,
				Labels:            cloudFunction.Labels,
				Trigger:           cloudFunction.Trigger,
				Runtime:           cloudFunction.Runtime,
				AvailableMemoryMb: cloudFunction.AvailableMemoryMb,
				Timeout:           cloudFunction.Timeout,
			})
		if err != nil {
			return err
		}
		operationName = operationRecord.Name
	} else {
		operationName = operation.Name
	}
	log.Printf("%s gcf cloud function deployment started", functionDeployment.Core.InstanceName)
	log.Println(operationName)
	return functionDeployment.waitOperation(operationName)
}
