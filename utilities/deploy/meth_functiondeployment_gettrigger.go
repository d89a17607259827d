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

	"github.com/merlinnot/firebase-tools/utilities/gcf"
)

func (functionDeployment *FunctionDeployment) getTrigger() (trigger gcf.Trigger, err error) {
	switch functionDeployment.Settings.Service.GCF.FunctionType {
	case "backgroundPubSub":
		return gcf.EventTrigger{
			EventType:     "google.pubsub.topic.publish",
			Resource:      fmt.Sprintf("projects/%s/topics/%s", functionDeployment.Core.ProjectID, functionDeployment.Settings.Instance.GCF.TriggerTopic),
			Service:       "pubsub.googleapis.com",
			FailurePolicy: &gcf.FailurePolicy{Retry: true},
		}, nil
	case "backgroundGCS":
		return gcf.EventTrigger{
			EventType:     "google.storage.object.finalize",
			Resource:      fmt.Sprintf("projects/_/buckets/%s", functionDeployment.Settings.Instance.GCF.BucketName),
			Service:       "storage.googleapis.com",
			FailurePolicy: &gcf.FailurePolicy{Retry: true},
		}, nil
	case "https":
		return gcf.HTTPSTrigger{}, nil
	default:
		return trigger, fmt.Errorf("functionType provided not managed: %s", functionDeployment.Settings.Service.GCF.FunctionType)
	}
}
