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
	"fmt"
	"strings"

	"github.com/merlinnot/firebase-tools/utilities/htt"
)

// ListFunctions returns the functions deployed in a location.
// Each result carries its short FunctionName, the tail segment of the fully qualified name
func (client *Client) ListFunctions(ctx context.Context, projectID, locationName string) (cloudFunctions []CloudFunction, err error) {
	target := Target{ProjectID: projectID, LocationName: locationName}
	var response struct {
		Functions []CloudFunction `json:"functions"`
	}
	err = client.Requester.Request(ctx, htt.RequestOptions{
		Method: "GET",
		Path:   target.CollectionPath(),
	}, &response)
	if err != nil {
		client.Logger.Debug(fmt.Sprintf("failed to list functions in %s: %v", locationName, err))
		return nil, fmt.Errorf("%v", err)
	}
	for i := range response.Functions {
		nameParts := strings.Split(response.Functions[i].Name, "/")
		response.Functions[i].FunctionName = nameParts[len(nameParts)-1]
	}
	return response.Functions, nil
}
