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

import "time"

// TxBuilder accumulates transaction fields and validates them at a single
// Build step. Type, sender, receiver, amount, and nonce are required; fee
// defaults to 0, payload to empty, version to TransactionVersion, and
// timestamp to the current time in Unix milliseconds.
type TxBuilder struct {
	version   uint16
	txType    *TransactionType
	sender    string
	receiver  string
	amount    *Amount
	fee       uint64
	nonce     *uint64
	timestamp *uint64
	payload   []byte
}

func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		version: TransactionVersion,
	}
}

// Version overrides the canonical layout version. Only needed when
// targeting a non-current protocol version.
func (b *TxBuilder) Version(version uint16) *TxBuilder {
	b.version = version
	return b
}

func (b *TxBuilder) Type(txType TransactionType) *TxBuilder {
	b.txType = &txType
	return b
}

func (b *TxBuilder) Sender(address string) *TxBuilder {
	b.sender = address
	return b
}

func (b *TxBuilder) Receiver(address string) *TxBuilder {
	b.receiver = address
	return b
}

func (b *TxBuilder) Amount(amount Amount) *TxBuilder {
	b.amount = &amount
	return b
}

func (b *TxBuilder) Fee(fee uint64) *TxBuilder {
	b.fee = fee
	return b
}

func (b *TxBuilder) Nonce(nonce uint64) *TxBuilder {
	b.nonce = &nonce
	return b
}

// Timestamp sets an explicit creation time. Version 1 uses Unix
// milliseconds.
func (b *TxBuilder) Timestamp(timestamp uint64) *TxBuilder {
	b.timestamp = &timestamp
	return b
}

func (b *TxBuilder) Payload(data []byte) *TxBuilder {
	b.payload = data
	return b
}

// Build validates that every required field was set and returns the
// constructed transaction. A MissingFieldsError names all absent fields,
// not just the first.
func (b *TxBuilder) Build() (Transaction, error) {
	var missing []string
	if b.txType == nil {
		missing = append(missing, "type")
	}
	if b.sender == "" {
		missing = append(missing, "sender")
	}
	if b.receiver == "" {
		missing = append(missing, "receiver")
	}
	if b.amount == nil {
		missing = append(missing, "amount")
	}
	if b.nonce == nil {
		missing = append(missing, "nonce")
	}
	if len(missing) > 0 {
		return Transaction{}, &MissingFieldsError{
			Fields: missing,
		}
	}
	timestamp := uint64(time.Now().UnixMilli())
	if b.timestamp != nil {
		timestamp = *b.timestamp
	}
	return Transaction{
		Version:   b.version,
		Type:      *b.txType,
		Sender:    b.sender,
		Receiver:  b.receiver,
		Amount:    *b.amount,
		Fee:       b.fee,
		Nonce:     *b.nonce,
		Timestamp: timestamp,
		Payload:   b.payload,
	}, nil
}
