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

	"github.com/merlinnot/firebase-tools/utilities/htt"
)

// GetOperation returns the current state of an asynchronous server side operation
func (client *Client) GetOperation(ctx context.Context, operationName string) (operation *Operation, err error) {
	operation = &Operation{}
	err = client.Requester.Request(ctx, htt.RequestOptions{
		Method: "GET",
		Path:   OperationPath(operationName),
	}, operation)
	if err != nil {
		client.Logger.Debug(fmt.Sprintf("failed to get status of operation: %s", operationName))
		client.Logger.Debug(err.Error())
		return nil, err
	}
	return operation, nil
}
