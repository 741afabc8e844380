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

package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTransactionType is returned when an interchange token
	// does not name a known transaction type.
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrInvalidCurrency is returned when a currency ticker is empty, too
	// long, or contains characters other than letters and digits.
	ErrInvalidCurrency = errors.New("invalid currency")

	// Pre-submission validation failures. These are structural checks a
	// node would reject; they are separate from signature verification,
	// which is a boolean predicate.
	ErrZeroNonce         = errors.New("nonce must be greater than zero")
	ErrZeroAmount        = errors.New("amount must be greater than zero")
	ErrSelfTransfer      = errors.New("sender and receiver must differ")
	ErrTimestampInFuture = errors.New("timestamp too far in the future")
)

// MissingFieldsError reports every required field absent at build time,
// not just the first.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf(
		"missing required fields: %s",
		strings.Join(e.Fields, ", "),
	)
}
