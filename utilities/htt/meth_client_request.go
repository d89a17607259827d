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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/merlinnot/firebase-tools/utilities/erm"
	"google.golang.org/api/googleapi"
)

// Retries is the max number of tentative when the response status code is listed as retryable by the caller
const Retries = 5

// Request issues one REST call and decodes the JSON response body into response when not nil.
// Status codes listed in RetryCodes are retried up to Retries times, any other failure is returned as is.
func (client *Client) Request(ctx context.Context, requestOptions RequestOptions, response interface{}) (err error) {
	var bodyBytes []byte
	if requestOptions.Body != nil {
		bodyBytes, err = json.Marshal(requestOptions.Body)
		if err != nil {
			return fmt.Errorf("json.Marshal %v", err)
		}
	}
	requestURL := client.Origin + requestOptions.Path
	if len(requestOptions.Query) > 0 {
		requestURL = requestURL + "?" + requestOptions.Query.Encode()
	}
	for tentative := 0; tentative < Retries; tentative++ {
		var request *http.Request
		request, err = http.NewRequest(requestOptions.Method, requestURL, bytes.NewReader(bodyBytes))
		if err != nil {
			return fmt.Errorf("http.NewRequest %v", err)
		}
		request = request.WithContext(ctx)
		if requestOptions.Body != nil {
			request.Header.Set("Content-Type", "application/json")
		}
		var httpResponse *http.Response
		httpResponse, err = client.HTTPClient.Do(request)
		if err != nil {
			return err
		}
		err = googleapi.CheckResponse(httpResponse)
		if err != nil {
			httpResponse.Body.Close()
			if tentative < Retries-1 && isRetryable(erm.StatusCode(err), requestOptions.RetryCodes) {
				log.Printf("htt retryable status code %d on %s %s, tentative %d, wait %d sec and retry",
					erm.StatusCode(err), requestOptions.Method, requestOptions.Path, tentative, client.WaitSec)
				time.Sleep(client.WaitSec * time.Second)
				continue
			}
			return err
		}
		if response != nil {
			err = json.NewDecoder(httpResponse.Body).Decode(response)
			httpResponse.Body.Close()
			if err != nil {
				return fmt.Errorf("json.Decode %v", err)
			}
			return nil
		}
		httpResponse.Body.Close()
		return nil
	}
	return err
}

func isRetryable(statusCode int, retryCodes []int) bool {
	for _, retryCode := range retryCodes {
		if statusCode == retryCode {
			return true
		}
	}
	return false
}
