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
	"context"
	"time"

	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

// FunctionDeployment settings and artifacts to deploy one cloud function
type FunctionDeployment struct {
	Core struct {
		Ctx             context.Context `yaml:"-"`
		Client          *gcf.Client     `yaml:"-"`
		EnvironmentName string
		InstanceName    string
		ProjectID       string
		LocationName    string
		RepositoryPath  string
		Dump            bool
		PollIntervalSec time.Duration
	}
	Settings  Settings
	Artifacts struct {
		Target        gcf.Target
		CloudFunction gcf.CloudFunction
		ZipFullPath   string
		ZipFiles      map[string]string
		UploadURL     string
	} `yaml:"-"`
}

// NewFunctionDeployment create deployment structure
func NewFunctionDeployment() *FunctionDeployment {
	functionDeployment := &FunctionDeployment{}
	functionDeployment.Core.PollIntervalSec = 5
	return functionDeployment
}
