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

// Settings describes one function deployment instance, usually read from a YAML settings file
type Settings struct {
	Service struct {
		GCF struct {
			AvailableMemoryMb   int64  `yaml:"availableMemoryMb"`
			Description         string `yaml:"description"`
			EntryPoint          string `yaml:"entryPoint"`
			Runtime             string `yaml:"runtime"`
			Timeout             string `yaml:"timeout"`
			ServiceAccountEmail string `yaml:"serviceAccountEmail"`
			FunctionType        string `yaml:"functionType"`
		} `yaml:"gcf"`
	} `yaml:"service"`
	Instance struct {
		GCF struct {
			TriggerTopic string `yaml:"triggerTopic"`
			BucketName   string `yaml:"bucketName"`
		} `yaml:"gcf"`
	} `yaml:"instance"`
}
