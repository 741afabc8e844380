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
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/alissonlinneker/nova-protocol/identity"
)

// Interchange schema: the JSON shape exchanged with nodes. Transaction
// types use the lowercase token vocabulary, payloads and key material are
// hex strings. This is distinct from the canonical binary layout, which
// is never serialized as JSON.

type transactionJSON struct {
	Version   uint16 `json:"version"`
	Type      string `json:"type"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    Amount `json:"amount"`
	Fee       uint64 `json:"fee"`
	Nonce     uint64 `json:"nonce"`
	Timestamp uint64 `json:"timestamp"`
	Payload   string `json:"payload"`
}

type signedTransactionJSON struct {
	Transaction Transaction `json:"transaction"`
	Signature   string      `json:"signature"`
	PublicKey   string      `json:"public_key"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		Version:   t.Version,
		Type:      t.Type.InterchangeToken(),
		Sender:    t.Sender,
		Receiver:  t.Receiver,
		Amount:    t.Amount,
		Fee:       t.Fee,
		Nonce:     t.Nonce,
		Timestamp: t.Timestamp,
		Payload:   hex.EncodeToString(t.Payload),
	})
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var tmp transactionJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	txType, err := TransactionTypeFromToken(tmp.Type)
	if err != nil {
		return err
	}
	amount, err := NewAmount(tmp.Amount.Value, tmp.Amount.Currency)
	if err != nil {
		return err
	}
	var payload []byte
	if tmp.Payload != "" {
		payload, err = hex.DecodeString(tmp.Payload)
		if err != nil {
			return fmt.Errorf("invalid payload hex: %w", err)
		}
	}
	t.Version = tmp.Version
	t.Type = txType
	t.Sender = tmp.Sender
	t.Receiver = tmp.Receiver
	t.Amount = amount
	t.Fee = tmp.Fee
	t.Nonce = tmp.Nonce
	t.Timestamp = tmp.Timestamp
	t.Payload = payload
	return nil
}

func (s SignedTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(signedTransactionJSON{
		Transaction: s.Transaction,
		Signature:   hex.EncodeToString(s.Signature),
		PublicKey:   hex.EncodeToString(s.PublicKey),
	})
}

func (s *SignedTransaction) UnmarshalJSON(data []byte) error {
	var tmp signedTransactionJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	signature, err := hex.DecodeString(tmp.Signature)
	if err != nil {
		return fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(signature) != identity.SignatureSize {
		return &identity.InvalidLengthError{
			What: "signature",
			Want: identity.SignatureSize,
			Got:  len(signature),
		}
	}
	publicKey, err := hex.DecodeString(tmp.PublicKey)
	if err != nil {
		return fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(publicKey) != identity.PublicKeySize {
		return &identity.InvalidLengthError{
			What: "public key",
			Want: identity.PublicKeySize,
			Got:  len(publicKey),
		}
	}
	s.Transaction = tmp.Transaction
	s.Signature = signature
	s.PublicKey = publicKey
	return nil
}
