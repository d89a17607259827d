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

// Trigger is the invocation variant of a cloud function. Exactly one variant is set, never both, never neither
type Trigger interface {
	trigger()
}

// HTTPSTrigger invokes the function over HTTPS. URL is set by the server
type HTTPSTrigger struct {
	URL string
}

func (HTTPSTrigger) trigger() {}

// FailurePolicy tells the system to retry a failed event driven execution
type FailurePolicy struct {
	Retry bool
}

// EventTrigger invokes the function when an event occurs on the watched resource
type EventTrigger struct {
	EventType     string
	Resource      string
	Service       string
	FailurePolicy *FailurePolicy
}

func (EventTrigger) trigger() {}

// wire returns the v1 REST shape of the event trigger, only populated sub fields are present
func (eventTrigger EventTrigger) wire() map[string]interface{} {
	wire := make(map[string]interface{})
	if eventTrigger.EventType != "" {
		wire["eventType"] = eventTrigger.EventType
	}
	if eventTrigger.Resource != "" {
		wire["resource"] = eventTrigger.Resource
	}
	if eventTrigger.Service != "" {
		wire["service"] = eventTrigger.Service
	}
	if eventTrigger.FailurePolicy != nil {
		failurePolicy := make(map[string]interface{})
		if eventTrigger.FailurePolicy.Retry {
			failurePolicy["retry"] = make(map[string]interface{})
		}
		wire["failurePolicy"] = failurePolicy
	}
	return wire
}

// wireKeys returns the populated sub field keys in a stable order, used to build eventTrigger.<subkey> mask paths
func (eventTrigger EventTrigger) wireKeys() (keys []string) {
	wire := eventTrigger.wire()
	for _, key := range []string{"eventType", "resource", "service", "failurePolicy"} {
		if _, ok := wire[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
