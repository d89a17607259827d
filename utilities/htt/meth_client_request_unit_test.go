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
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/merlinnot/firebase-tools/utilities/erm"
)

func TestUnitClientRequest(t *testing.T) {
	t.Parallel()
	var gotMethod, gotPath, gotQuery, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		gotPath = request.URL.Path
		gotQuery = request.URL.RawQuery
		gotContentType = request.Header.Get("Content-Type")
		writer.Write([]byte(`{"name":"operations/deploy123","done":false}`))
	}))
	defer server.Close()

	client := &Client{HTTPClient: server.Client(), Origin: server.URL}
	query := url.Values{}
	query.Set("updateMask", "name,labels")
	var response struct {
		Name string `json:"name"`
		Done bool   `json:"done"`
	}
	err := client.Request(context.Background(), RequestOptions{
		Method: "PATCH",
		Path:   "/v1/projects/p/locations/l/functions/f",
		Query:  query,
		Body:   map[string]string{"name": "f"},
	}, &response)
	if err != nil {
		t.Fatalf("Request %v", err)
	}
	if gotMethod != "PATCH" {
		t.Errorf("got method %s, want PATCH", gotMethod)
	}
	if gotPath != "/v1/projects/p/locations/l/functions/f" {
		t.Errorf("got path %s, want /v1/projects/p/locations/l/functions/f", gotPath)
	}
	if gotQuery != "updateMask=name%2Clabels" {
		t.Errorf("got query %s, want updateMask=name%%2Clabels", gotQuery)
	}
	if gotContentType != "application/json" {
		t.Errorf("got content type %s, want application/json", gotContentType)
	}
	if response.Name != "operations/deploy123" {
		t.Errorf("got name %s, want operations/deploy123", response.Name)
	}
}

func TestUnitClientRequestErrorStatusCode(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(429)
		writer.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded"}}`))
	}))
	defer server.Close()

	client := &Client{HTTPClient: server.Client(), Origin: server.URL}
	err := client.Request(context.Background(), RequestOptions{Method: "POST", Path: "/v1/projects/p/locations/l/functions"}, nil)
	if err == nil {
		t.Fatal("want an error on status code 429, got nil")
	}
	if erm.StatusCode(err) != 429 {
		t.Errorf("got status code %d, want 429", erm.StatusCode(err))
	}
}

func TestUnitClientRequestRetryCodes(t *testing.T) {
	t.Parallel()
	tentatives := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tentatives++
		if tentatives < 3 {
			writer.WriteHeader(503)
			writer.Write([]byte(`{"error":{"code":503,"message":"Service unavailable"}}`))
			return
		}
		writer.Write([]byte(`{"uploadUrl":"https://storage.googleapis.com/signed"}`))
	}))
	defer server.Close()

	client := &Client{HTTPClient: server.Client(), Origin: server.URL, WaitSec: 0}
	var response struct {
		UploadURL string `json:"uploadUrl"`
	}
	err := client.Request(context.Background(), RequestOptions{
		Method:     "POST",
		Path:       "/v1/projects/p/locations/l/functions:generateUploadUrl",
		RetryCodes: []int{503},
	}, &response)
	if err != nil {
		t.Fatalf("Request %v", err)
	}
	if tentatives != 3 {
		t.Errorf("got %d tentatives, want 3", tentatives)
	}
	if response.UploadURL != "https://storage.googleapis.com/signed" {
		t.Errorf("got uploadUrl %s, want the signed URL", response.UploadURL)
	}
}

func TestUnitClientRequestNoRetryWithoutHint(t *testing.T) {
	t.Parallel()
	tentatives := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tentatives++
		writer.WriteHeader(503)
		writer.Write([]byte(`{"error":{"code":503,"message":"Service unavailable"}}`))
	}))
	defer server.Close()

	client := &Client{HTTPClient: server.Client(), Origin: server.URL, WaitSec: 0}
	err := client.Request(context.Background(), RequestOptions{Method: "GET", Path: "/v1/projects/p/locations/l/functions"}, nil)
	if err == nil {
		t.Fatal("want an error, got nil")
	}
	if tentatives != 1 {
		t.Errorf("got %d tentatives, want 1", tentatives)
	}
}
