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
	"net/url"
	"strings"

	"github.com/merlinnot/firebase-tools/utilities/htt"
)

// PatchFunction requests a partial update of an existing cloud function.
// The body carries only the supplied fields and the updateMask query parameter lists their paths
func (client *Client) PatchFunction(ctx context.Context, target Target, patchOptions PatchOptions) (operationRecord *OperationRecord, err error) {
	body := CloudFunction{
		Name:              target.ResourceName(),
		Labels:            patchOptions.Labels,
		Source:            patchOptions.Source,
		Trigger:           patchOptions.Trigger,
		Runtime:           patchOptions.Runtime,
		Timeout:           patchOptions.Timeout,
		AvailableMemoryMb: patchOptions.AvailableMemoryMb,
	}
	query := url.Values{}
	query.Set("updateMask", strings.Join(buildUpdateMask(patchOptions), ","))
	var operation Operation
	err = client.Requester.Request(ctx, htt.RequestOptions{
		Method: "PATCH",
		Path:   target.ItemPath(),
		Query:  query,
		Body:   body,
	}, &operation)
	if err != nil {
		return nil, client.failAction(target, "update", err)
	}
	return &OperationRecord{Target: target, Name: operation.Name, Type: "update", Done: false}, nil
}
