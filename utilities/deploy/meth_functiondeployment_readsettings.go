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

	"github.com/merlinnot/firebase-tools/utilities/ffo"
)

// SettingsFileName is the name of the YAML settings file describing one deployment instance
const SettingsFileName = "settings.yaml"

// ReadSettings loads the instance settings file from the repository path
func (functionDeployment *FunctionDeployment) ReadSettings() (err error) {
	settingsPath := fmt.Sprintf("%s/%s", functionDeployment.Core.RepositoryPath, SettingsFileName)
	err = ffo.ReadUnmarshalYAML(settingsPath, &functionDeployment.Settings)
	if err != nil {
		return fmt.Errorf("ffo.ReadUnmarshalYAML %v", err)
	}
	return nil
}
