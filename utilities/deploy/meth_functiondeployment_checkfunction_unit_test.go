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
	"encoding/json"
	"strings"
	"testing"

	"github.com/merlinnot/firebase-tools/utilities/gcf"
	"github.com/merlinnot/firebase-tools/utilities/htt"
	"github.com/merlinnot/firebase-tools/utilities/logging"
)

type fakeRequester struct {
	responseJSON string
}

func (fake *fakeRequester) Request(ctx context.Context, requestOptions htt.RequestOptions, response interface{}) error {
	if response == nil {
		return nil
	}
	return json.Unmarshal([]byte(fake.responseJSON), response)
}

func newCheckedDeployment(responseJSON string) *FunctionDeployment {
	functionDeployment := NewFunctionDeployment()
	functionDeployment.Core.Ctx = context.Background()
	functionDeployment.Core.Client = gcf.NewClient(&fakeRequester{responseJSON: responseJSON}, &logging.Logger{InstanceName: "fooBar"})
	functionDeployment.Core.ProjectID = "proj"
	functionDeployment.Core.LocationName = "us-central1"
	functionDeployment.Core.InstanceName = "fooBar"
	functionDeployment.Settings.Service.GCF.FunctionType = "https"
	functionDeployment.Settings.Service.GCF.Runtime = "go113"
	functionDeployment.Settings.Service.GCF.Timeout = "60s"
	functionDeployment.Settings.Service.GCF.AvailableMemoryMb = 128
	return functionDeployment
}

func TestUnitCheckFunction(t *testing.T) {
	var testCases = []struct {
		name            string
		responseJSON    string
		expectedInError string
	}{
		{
			"compliant",
			`{"functions": [{
				"name": "projects/proj/locations/us-central1/functions/fooBar",
				"runtime": "go113",
				"timeout": "60s",
				"availableMemoryMb": 128,
				"labels": {"name": "foobar"},
				"ingressSettings": "ALLOW_ALL",
				"httpsTrigger": {"url": "https://us-central1-proj.cloudfunctions.net/fooBar"}}]}`,
			"",
		},
		{
			"runtimeDrift",
			`{"functions": [{
				"name": "projects/proj/locations/us-central1/functions/fooBar",
				"runtime": "go111",
				"timeout": "60s",
				"availableMemoryMb": 128,
				"labels": {"name": "foobar"},
				"ingressSettings": "ALLOW_ALL",
				"httpsTrigger": {}}]}`,
			"runtime\nwant go113\nhave go111",
		},
		{
			"triggerVariantDrift",
			`{"functions": [{
				"name": "projects/proj/locations/us-central1/functions/fooBar",
				"runtime": "go113",
				"timeout": "60s",
				"availableMemoryMb": 128,
				"labels": {"name": "foobar"},
				"ingressSettings": "ALLOW_ALL",
				"eventTrigger": {"eventType": "google.pubsub.topic.publish", "resource": "projects/proj/topics/t"}}]}`,
			"want httpsTrigger",
		},
		{
			"notFound",
			`{"functions": [{"name": "projects/proj/locations/us-central1/functions/other", "httpsTrigger": {}}]}`,
			"NOT found",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			functionDeployment := newCheckedDeployment(tc.responseJSON)
			err := functionDeployment.situate()
			if err != nil {
				t.Fatalf("situate %v", err)
			}
			err = functionDeployment.CheckFunction()
			if tc.expectedInError == "" {
				if err != nil {
					t.Errorf("Should NOT send back an error and is %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Should send back an error and is NOT")
			}
			if !strings.Contains(err.Error(), tc.expectedInError) {
				t.Errorf("got error %v, want it to contain %s", err, tc.expectedInError)
			}
		})
	}
}
