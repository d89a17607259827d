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

import (
	"context"
	"encoding/json"

	"github.com/merlinnot/firebase-tools/utilities/htt"
	"github.com/merlinnot/firebase-tools/utilities/logging"
)

// fakeRequester records the last request options and plays back a canned response or error
type fakeRequester struct {
	lastOptions  htt.RequestOptions
	responseJSON string
	err          error
}

func (requester *fakeRequester) Request(ctx context.Context, requestOptions htt.RequestOptions, response interface{}) error {
	requester.lastOptions = requestOptions
	if requester.err != nil {
		return requester.err
	}
	if response != nil && requester.responseJSON != "" {
		return json.Unmarshal([]byte(requester.responseJSON), response)
	}
	return nil
}

func newTestClient(requester *fakeRequester) *Client {
	return NewClient(requester, &logging.Logger{
		MicroserviceName: "firebase-tools",
		InstanceName:     "unit-test",
		Environment:      "test",
	})
}
