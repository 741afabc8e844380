// Copyright 2025 Nova Foundation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package identity

import "fmt"

// InvalidLengthError is returned when seed, public key, or signature
// material does not have its required fixed length.
type InvalidLengthError struct {
	What string
	Want int
	Got  int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"%s must be exactly %d bytes, got %d",
		e.What,
		e.Want,
		e.Got,
	)
}

// InvalidPrefixError is returned when a decoded address carries a
// human-readable prefix other than the NOVA HRP.
type InvalidPrefixError struct {
	Want string
	Got  string
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf(
		"invalid address prefix: expected %q, got %q",
		e.Want,
		e.Got,
	)
}
