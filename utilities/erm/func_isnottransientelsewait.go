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

package erm

import (
	"log"
	"time"
)

// IsNotTransientElseWait check is the error is a 5xx and wait if it is
func IsNotTransientElseWait(err error, waitSec time.Duration) (isNotTransient bool) {
	statusCode := StatusCode(err)
	if statusCode < 500 || statusCode > 511 {
		return true
	}
	log.Printf("Transient error %d, wait %d sec and retry %v", statusCode, waitSec, err)
	time.Sleep(waitSec * time.Second)
	return false
}
