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
	"fmt"
	"time"
)

// MaxTimestampSkew is how far in the future a transaction timestamp may
// lie before validating nodes reject it. Matches the mempool TTL window.
const MaxTimestampSkew = 5 * time.Minute

// ValidateForSubmission runs the cheap structural checks a node applies
// before admitting a transaction to its mempool: positive nonce, positive
// amount, distinct sender and receiver, and a timestamp no further than
// MaxTimestampSkew in the future. Checks are ordered cheapest first and
// the first failure is returned.
//
// This is deliberately separate from SignedTransaction.Verify, which is
// the authentication predicate: a transaction can be authentically signed
// and still be structurally unacceptable to the network.
func (t Transaction) ValidateForSubmission(now time.Time) error {
	if t.Nonce == 0 {
		return ErrZeroNonce
	}
	if t.Amount.Value == 0 {
		return ErrZeroAmount
	}
	if t.Sender == t.Receiver {
		return fmt.Errorf("%w: both are %s", ErrSelfTransfer, t.Sender)
	}
	maxTimestamp := uint64(now.Add(MaxTimestampSkew).UnixMilli())
	if t.Timestamp > maxTimestamp {
		return fmt.Errorf(
			"%w: %d exceeds %d",
			ErrTimestampInFuture,
			t.Timestamp,
			maxTimestamp,
		)
	}
	return nil
}
