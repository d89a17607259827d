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
	"github.com/merlinnot/firebase-tools/utilities/htt"
	"github.com/merlinnot/firebase-tools/utilities/logging"
)

// Client maps local function deployment intents to cloud functions management REST calls.
// It performs no retry and no polling itself, the transport owns retry policy and the caller owns polling
type Client struct {
	Requester htt.Requester
	Logger    *logging.Logger
}

// NewClient creates a mapper client on a given transport and logger
func NewClient(requester htt.Requester, logger *logging.Logger) *Client {
	return &Client{Requester: requester, Logger: logger}
}
