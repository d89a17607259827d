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
	"reflect"

	"github.com/merlinnot/firebase-tools/utilities/gcf"
	"github.com/merlinnot/firebase-tools/utilities/str"
)

// CheckFunction compares the desired cloud function configuration with the deployed one
func (functionDeployment *FunctionDeployment) CheckFunction() (err error) {
	cloudFunctions, err := functionDeployment.Core.Client.ListFunctions(functionDeployment.Core.Ctx,
		functionDeployment.Core.ProjectID, functionDeployment.Core.LocationName)
	if err != nil {
		return err
	}
	var retrievedCloudFunction *gcf.CloudFunction
	for i := range cloudFunctions {
		if cloudFunctions[i].FunctionName == functionDeployment.Core.InstanceName {
			retrievedCloudFunction = &cloudFunctions[i]
			break
		}
	}
	if retrievedCloudFunction == nil {
		return fmt.Errorf("%s gcf function NOT found for this instance", functionDeployment.Core.InstanceName)
	}

	desiredCloudFunction := functionDeployment.Artifacts.CloudFunction
	var s string
	if desiredCloudFunction.AvailableMemoryMb != retrievedCloudFunction.AvailableMemoryMb {
		s = fmt.Sprintf("%savailableMemoryMb\nwant %d\nhave %d\n", s,
			desiredCloudFunction.AvailableMemoryMb,
			retrievedCloudFunction.AvailableMemoryMb)
	}
	if desiredCloudFunction.Description != retrievedCloudFunction.Description {
		s = fmt.Sprintf("%sdescription\nwant %s\nhave %s\n", s,
			desiredCloudFunction.Description,
			retrievedCloudFunction.Description)
	}
	if desiredCloudFunction.EntryPoint != retrievedCloudFunction.EntryPoint {
		s = fmt.Sprintf("%sentryPoint\nwant %s\nhave %s\n", s,
			desiredCloudFunction.EntryPoint,
			retrievedCloudFunction.EntryPoint)
	}
	if !reflect.DeepEqual(desiredCloudFunction.Labels, retrievedCloudFunction.Labels) {
		s = fmt.Sprintf("%slabels\nwant %s\nhave %s\n", s,
			str.FlattenMapStringString(desiredCloudFunction.Labels),
			str.FlattenMapStringString(retrievedCloudFunction.Labels))
	}
	if desiredCloudFunction.Runtime != retrievedCloudFunction.Runtime {
		s = fmt.Sprintf("%sruntime\nwant %s\nhave %s\n", s,
			desiredCloudFunction.Runtime,
			retrievedCloudFunction.Runtime)
	}
	if desiredCloudFunction.ServiceAccountEmail != retrievedCloudFunction.ServiceAccountEmail {
		s = fmt.Sprintf("%sserviceAccountEmail\nwant %s\nhave %s\n", s,
			desiredCloudFunction.ServiceAccountEmail,
			retrievedCloudFunction.ServiceAccountEmail)
	}
	if desiredCloudFunction.Timeout != retrievedCloudFunction.Timeout {
		s = fmt.Sprintf("%stimeout\nwant %s\nhave %s\n", s,
			desiredCloudFunction.Timeout,
			retrievedCloudFunction.Timeout)
	}
	if desiredCloudFunction.IngressSettings != retrievedCloudFunction.IngressSettings {
		s = fmt.Sprintf("%singressSettings\nwant %s\nhave %s\n", s,
			desiredCloudFunction.IngressSettings,
			retrievedCloudFunction.IngressSettings)
	}
	switch desiredTrigger := desiredCloudFunction.Trigger.(type) {
	case gcf.EventTrigger:
		retrievedTrigger, ok := retrievedCloudFunction.Trigger.(gcf.EventTrigger)
		if !ok {
			s = fmt.Sprintf("%strigger\nwant eventTrigger\nhave %T\n", s, retrievedCloudFunction.Trigger)
			break
		}
		if desiredTrigger.EventType != retrievedTrigger.EventType {
			s = fmt.Sprintf("%seventTrigger.EventType\nwant %s\nhave %s\n", s,
				desiredTrigger.EventType, retrievedTrigger.EventType)
		}
		if desiredTrigger.Resource != retrievedTrigger.Resource {
			s = fmt.Sprintf("%seventTrigger.Resource\nwant %s\nhave %s\n", s,
				desiredTrigger.Resource, retrievedTrigger.Resource)
		}
		if desiredTrigger.Service != retrievedTrigger.Service {
			s = fmt.Sprintf("%seventTrigger.Service\nwant %s\nhave %s\n", s,
				desiredTrigger.Service, retrievedTrigger.Service)
		}
	case gcf.HTTPSTrigger:
		// The https trigger URL is set by the server, only the variant is checked
		if _, ok := retrievedCloudFunction.Trigger.(gcf.HTTPSTrigger); !ok {
			s = fmt.Sprintf("%strigger\nwant httpsTrigger\nhave %T\n", s, retrievedCloudFunction.Trigger)
		}
	}

	if len(s) > 0 {
		return fmt.Errorf("%s gcf invalid cloud function configuration:\n%s", functionDeployment.Core.InstanceName, s)
	}
	return nil
}
