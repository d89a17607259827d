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

import "encoding/json"

// CloudFunction describes a function to create or update.
// Source and Trigger are tagged choices, each carries exactly one variant
type CloudFunction struct {
	Name                 string
	Description          string
	EntryPoint           string
	Runtime              string
	Timeout              string
	AvailableMemoryMb    int64
	Labels               map[string]string
	EnvironmentVariables map[string]string
	ServiceAccountEmail  string
	VPCConnector         string
	Network              string
	MaxInstances         int64
	IngressSettings      string
	Status               string
	Source               SourceCode
	Trigger              Trigger
	// FunctionName is the short name derived locally from Name, it is not part of the wire format
	FunctionName string
}

// MarshalJSON renders the descriptor to the flat v1 wire shape, only populated fields are present
func (cloudFunction CloudFunction) MarshalJSON() ([]byte, error) {
	wire := make(map[string]interface{})
	if cloudFunction.Name != "" {
		wire["name"] = cloudFunction.Name
	}
	if cloudFunction.Description != "" {
		wire["description"] = cloudFunction.Description
	}
	if cloudFunction.EntryPoint != "" {
		wire["entryPoint"] = cloudFunction.EntryPoint
	}
	if cloudFunction.Runtime != "" {
		wire["runtime"] = cloudFunction.Runtime
	}
	if cloudFunction.Timeout != "" {
		wire["timeout"] = cloudFunction.Timeout
	}
	if cloudFunction.AvailableMemoryMb != 0 {
		wire["availableMemoryMb"] = cloudFunction.AvailableMemoryMb
	}
	if cloudFunction.Labels != nil {
		wire["labels"] = cloudFunction.Labels
	}
	if cloudFunction.EnvironmentVariables != nil {
		wire["environmentVariables"] = cloudFunction.EnvironmentVariables
	}
	if cloudFunction.ServiceAccountEmail != "" {
		wire["serviceAccountEmail"] = cloudFunction.ServiceAccountEmail
	}
	if cloudFunction.VPCConnector != "" {
		wire["vpcConnector"] = cloudFunction.VPCConnector
	}
	if cloudFunction.Network != "" {
		wire["network"] = cloudFunction.Network
	}
	if cloudFunction.MaxInstances != 0 {
		wire["maxInstances"] = cloudFunction.MaxInstances
	}
	if cloudFunction.IngressSettings != "" {
		wire["ingressSettings"] = cloudFunction.IngressSettings
	}
	switch source := cloudFunction.Source.(type) {
	case SourceArchive:
		wire["sourceArchiveUrl"] = source.URL
	case SourceRepository:
		repository := map[string]interface{}{"url": source.URL}
		if source.DeployedURL != "" {
			repository["deployedUrl"] = source.DeployedURL
		}
		wire["sourceRepository"] = repository
	case SourceUpload:
		wire["sourceUploadUrl"] = source.URL
	}
	switch trigger := cloudFunction.Trigger.(type) {
	case HTTPSTrigger:
		httpsTrigger := make(map[string]interface{})
		if trigger.URL != "" {
			httpsTrigger["url"] = trigger.URL
		}
		wire["httpsTrigger"] = httpsTrigger
	case EventTrigger:
		wire["eventTrigger"] = trigger.wire()
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reads the flat v1 wire shape back into the tagged choices
func (cloudFunction *CloudFunction) UnmarshalJSON(data []byte) (err error) {
	var wire struct {
		Name                 string            `json:"name"`
		Description          string            `json:"description"`
		EntryPoint           string            `json:"entryPoint"`
		Runtime              string            `json:"runtime"`
		Timeout              string            `json:"timeout"`
		AvailableMemoryMb    int64             `json:"availableMemoryMb"`
		Labels               map[string]string `json:"labels"`
		EnvironmentVariables map[string]string `json:"environmentVariables"`
		ServiceAccountEmail  string            `json:"serviceAccountEmail"`
		VPCConnector         string            `json:"vpcConnector"`
		Network              string            `json:"network"`
		MaxInstances         int64             `json:"maxInstances"`
		IngressSettings      string            `json:"ingressSettings"`
		Status               string            `json:"status"`
		SourceArchiveURL     string            `json:"sourceArchiveUrl"`
		SourceRepository     *struct {
			URL         string `json:"url"`
			DeployedURL string `json:"deployedUrl"`
		} `json:"sourceRepository"`
		SourceUploadURL string `json:"sourceUploadUrl"`
		HTTPSTrigger    *struct {
			URL string `json:"url"`
		} `json:"httpsTrigger"`
		EventTrigger *struct {
			EventType     string `json:"eventType"`
			Resource      string `json:"resource"`
			Service       string `json:"service"`
			FailurePolicy *struct {
				Retry *struct{} `json:"retry"`
			} `json:"failurePolicy"`
		} `json:"eventTrigger"`
	}
	err = json.Unmarshal(data, &wire)
	if err != nil {
		return err
	}
	cloudFunction.Name = wire.Name
	cloudFunction.Description = wire.Description
	cloudFunction.EntryPoint = wire.EntryPoint
	cloudFunction.Runtime = wire.Runtime
	cloudFunction.Timeout = wire.Timeout
	cloudFunction.AvailableMemoryMb = wire.AvailableMemoryMb
	cloudFunction.Labels = wire.Labels
	cloudFunction.EnvironmentVariables = wire.EnvironmentVariables
	cloudFunction.ServiceAccountEmail = wire.ServiceAccountEmail
	cloudFunction.VPCConnector = wire.VPCConnector
	cloudFunction.Network = wire.Network
	cloudFunction.MaxInstances = wire.MaxInstances
	cloudFunction.IngressSettings = wire.IngressSettings
	cloudFunction.Status = wire.Status
	switch {
	case wire.SourceArchiveURL != "":
		cloudFunction.Source = SourceArchive{URL: wire.SourceArchiveURL}
	case wire.SourceRepository != nil:
		cloudFunction.Source = SourceRepository{URL: wire.SourceRepository.URL, DeployedURL: wire.SourceRepository.DeployedURL}
	case wire.SourceUploadURL != "":
		cloudFunction.Source = SourceUpload{URL: wire.SourceUploadURL}
	}
	switch {
	case wire.HTTPSTrigger != nil:
		cloudFunction.Trigger = HTTPSTrigger{URL: wire.HTTPSTrigger.URL}
	case wire.EventTrigger != nil:
		eventTrigger := EventTrigger{
			EventType: wire.EventTrigger.EventType,
			Resource:  wire.EventTrigger.Resource,
			Service:   wire.EventTrigger.Service,
		}
		if wire.EventTrigger.FailurePolicy != nil {
			eventTrigger.FailurePolicy = &FailurePolicy{Retry: wire.EventTrigger.FailurePolicy.Retry != nil}
		}
		cloudFunction.Trigger = eventTrigger
	}
	return nil
}
