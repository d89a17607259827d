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

import "fmt"

// APIVersion of the cloud functions management REST API
const APIVersion = "v1"

// Target identifies a cloud function resource: project, location, optionally the function itself
type Target struct {
	ProjectID    string
	LocationName string
	FunctionName string
}

// ResourceName returns the fully qualified function name projects/{p}/locations/{l}/functions/{f}
func (target Target) ResourceName() string {
	return fmt.Sprintf("projects/%s/locations/%s/functions/%s", target.ProjectID, target.LocationName, target.FunctionName)
}

// CollectionPath returns the REST path of the functions collection for the target location
func (target Target) CollectionPath() string {
	return fmt.Sprintf("/%s/projects/%s/locations/%s/functions", APIVersion, target.ProjectID, target.LocationName)
}

// ItemPath returns the REST path of the function itself
func (target Target) ItemPath() string {
	return fmt.Sprintf("%s/%s", target.CollectionPath(), target.FunctionName)
}

// UploadURLPath returns the REST path used to request a signed source upload URL
func (target Target) UploadURLPath() string {
	return target.CollectionPath() + ":generateUploadUrl"
}

// OperationPath returns the REST path of an operation given its fully qualified name
func OperationPath(operationName string) string {
	return fmt.Sprintf("/%s/%s", APIVersion, operationName)
}
