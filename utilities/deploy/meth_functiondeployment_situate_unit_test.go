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
	"strings"
	"testing"

	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

func TestUnitSituate(t *testing.T) {
	t.Parallel()
	functionDeployment := NewFunctionDeployment()
	functionDeployment.Core.ProjectID = "proj"
	functionDeployment.Core.LocationName = "us-central1"
	functionDeployment.Core.InstanceName = "fooBar"
	functionDeployment.Settings.Service.GCF.FunctionType = "https"
	functionDeployment.Settings.Service.GCF.Runtime = "go113"
	functionDeployment.Settings.Service.GCF.Timeout = "60s"
	functionDeployment.Settings.Service.GCF.AvailableMemoryMb = 128

	err := functionDeployment.situate()
	if err != nil {
		t.Fatalf("situate %v", err)
	}
	cloudFunction := functionDeployment.Artifacts.CloudFunction
	if cloudFunction.Name != "projects/proj/locations/us-central1/functions/fooBar" {
		t.Errorf("got name %s, want the fully qualified name", cloudFunction.Name)
	}
	if cloudFunction.Labels["name"] != "foobar" {
		t.Errorf("got label name %s, want the lower cased instance name", cloudFunction.Labels["name"])
	}
	if cloudFunction.IngressSettings != "ALLOW_ALL" {
		t.Errorf("got ingress settings %s, want ALLOW_ALL", cloudFunction.IngressSettings)
	}
	if _, ok := cloudFunction.Trigger.(gcf.HTTPSTrigger); !ok {
		t.Errorf("got trigger %T, want HTTPSTrigger", cloudFunction.Trigger)
	}
	if !strings.HasSuffix(functionDeployment.Artifacts.ZipFullPath, ".zip") {
		t.Errorf("got zip path %s, want a .zip file", functionDeployment.Artifacts.ZipFullPath)
	}
}

func TestUnitSituateUnknownFunctionType(t *testing.T) {
	t.Parallel()
	functionDeployment := NewFunctionDeployment()
	functionDeployment.Settings.Service.GCF.FunctionType = "blabla"
	err := functionDeployment.situate()
	if err == nil {
		t.Errorf("Should send back an error and is NOT")
	}
}
