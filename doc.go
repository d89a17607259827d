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

/*
Package firebasetools deploys and manages Google Cloud Functions

## What

A thin client layer translating local function deployment intents (create, update, delete, list,
generate an upload URL, poll an operation) into REST calls against the Cloud Functions management
API, plus a deployment orchestrator zipping the sources, uploading them with a signed URL and
driving the create-else-patch flow until the server side operation completes.

## How

- `utilities/gcf` the resource operation mapper: one local method call, one outbound HTTP request
- `utilities/htt` the authenticated HTTP transport the mapper consumes
- `utilities/deploy` the function deployment orchestrator built on top of the mapper
- `utilities/erm` `utilities/logging` `utilities/ffo` `utilities/str` supporting concerns
*/
package firebasetools
