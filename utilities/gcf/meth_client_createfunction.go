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

	"github.com/merlinnot/firebase-tools/utilities/htt"
)

// CreateFunction requests the creation of a new cloud function in the target location
func (client *Client) CreateFunction(ctx context.Context, target Target, cloudFunction CloudFunction) (operation *Operation, err error) {
	operation = &Operation{}
	err = client.Requester.Request(ctx, htt.RequestOptions{
		Method: "POST",
		Path:   target.CollectionPath(),
		Body:   cloudFunction,
	}, operation)
	if err != nil {
		return nil, client.failAction(target, "create", err)
	}
	return operation, nil
}
