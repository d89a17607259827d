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

package logging

import "log"

// Logger emits leveled structured entries tagged with the emitting instance
type Logger struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
}

// Debug emits a DEBUG severity entry
func (logger *Logger) Debug(message string) {
	logger.emit("DEBUG", message)
}

// Info emits an INFO severity entry
func (logger *Logger) Info(message string) {
	logger.emit("INFO", message)
}

// Warning emits a WARNING severity entry
func (logger *Logger) Warning(message string) {
	logger.emit("WARNING", message)
}

func (logger *Logger) emit(severity, message string) {
	log.Println(Entry{
		MicroserviceName: logger.MicroserviceName,
		InstanceName:     logger.InstanceName,
		Environment:      logger.Environment,
		Severity:         severity,
		Message:          message,
	})
}
