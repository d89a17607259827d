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
	"strings"

	"github.com/google/uuid"
	"github.com/merlinnot/firebase-tools/utilities/ffo"
	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

func (functionDeployment *FunctionDeployment) situate() (err error) {
	functionDeployment.Artifacts.ZipFullPath = fmt.Sprintf("./%s.zip", uuid.New())
	functionDeployment.Artifacts.Target = gcf.Target{
		ProjectID:    functionDeployment.Core.ProjectID,
		LocationName: functionDeployment.Core.LocationName,
		FunctionName: functionDeployment.Core.InstanceName,
	}

	trigger, err := functionDeployment.getTrigger()
	if err != nil {
		return err
	}
	functionDeployment.Artifacts.CloudFunction = gcf.CloudFunction{
		Name:                functionDeployment.Artifacts.Target.ResourceName(),
		Description:         functionDeployment.Settings.Service.GCF.Description,
		EntryPoint:          functionDeployment.Settings.Service.GCF.EntryPoint,
		Runtime:             functionDeployment.Settings.Service.GCF.Runtime,
		Timeout:             functionDeployment.Settings.Service.GCF.Timeout,
		AvailableMemoryMb:   functionDeployment.Settings.Service.GCF.AvailableMemoryMb,
		Labels:              map[string]string{"name": strings.ToLower(functionDeployment.Core.InstanceName)},
		ServiceAccountEmail: functionDeployment.Settings.Service.GCF.ServiceAccountEmail,
		IngressSettings:     "ALLOW_ALL",
		Trigger:             trigger,
	}

	if functionDeployment.Core.Dump {
		err := ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s", functionDeployment.Core.RepositoryPath, "function_deployment.yaml"), functionDeployment)
		if err != nil {
			return err
		}
	}
	return nil
}
