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

// SourceCode is the source code variant of a cloud function. Exactly one variant is set, never both, never neither
type SourceCode interface {
	sourceCode()
}

// SourceArchive points to a source zip archive already stored in Cloud Storage
type SourceArchive struct {
	URL string
}

func (SourceArchive) sourceCode() {}

// SourceRepository points to source code hosted in a cloud source repository
type SourceRepository struct {
	URL         string
	DeployedURL string
}

func (SourceRepository) sourceCode() {}

// SourceUpload points to a signed upload URL obtained with GenerateUploadURL
type SourceUpload struct {
	URL string
}

func (SourceUpload) sourceCode() {}
