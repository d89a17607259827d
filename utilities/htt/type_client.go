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

package htt

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/google"
)

// FunctionsOrigin is the base origin of the cloud functions management REST API
const FunctionsOrigin = "https://cloudfunctions.googleapis.com"

// CloudPlatformScope is the OAuth2 scope requested for the application default credentials
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client issues authenticated REST calls against a base origin
type Client struct {
	HTTPClient *http.Client
	Origin     string
	WaitSec    time.Duration
}

// NewClient builds a transport client on the application default credentials
func NewClient(ctx context.Context) (client *Client, err error) {
	httpClient, err := google.DefaultClient(ctx, CloudPlatformScope)
	if err != nil {
		return client, fmt.Errorf("google.DefaultClient %v", err)
	}
	return &Client{
		HTTPClient: httpClient,
		Origin:     FunctionsOrigin,
		WaitSec:    5,
	}, nil
}
