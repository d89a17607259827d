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
	"net/http"

	"github.com/merlinnot/firebase-tools/utilities/htt"
)

// UploadURLRemediation is the setup verification hint surfaced when the signed URL request fails
const UploadURLRemediation = "Verify that your project has a Google App Engine instance set up and try again"

// GenerateUploadURL requests a signed URL where the function source archive can be uploaded.
// The request body must be empty https://cloud.google.com/functions/docs/reference/rest/v1/projects.locations.functions/generateUploadUrl
func (client *Client) GenerateUploadURL(ctx context.Context, projectID, locationName string) (uploadURL string, err error) {
	target := Target{ProjectID: projectID, LocationName: locationName}
	var response struct {
		UploadURL string `json:"uploadUrl"`
	}
	err = client.Requester.Request(ctx, htt.RequestOptions{
		Method:     "POST",
		Path:       target.UploadURLPath(),
		RetryCodes: []int{http.StatusServiceUnavailable},
	}, &response)
	if err != nil {
		client.Logger.Warning("error generating the upload URL")
		client.Logger.Info(UploadURLRemediation)
		return "", err
	}
	return response.UploadURL, nil
}
