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

// Package ledger defines the NOVA transaction model: the canonical binary
// layout ("signable bytes"), transaction id derivation, and the protocol
// binding a signature and public key to a transaction's declared sender.
//
// The signable bytes are the single source of truth: they are both the
// hash preimage for the transaction id and the message signed by the
// sender. Signature, public key, and id never appear inside them. The
// layout is versioned; changing it requires a version bump, never a
// silent edit.
package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/alissonlinneker/nova-protocol/identity"
)

// TransactionVersion is the current canonical layout version. Version 1
// timestamps are Unix milliseconds.
const TransactionVersion uint16 = 1

// Transaction is an unsigned NOVA transaction. Build one with TxBuilder;
// treat it as an immutable value afterward.
type Transaction struct {
	Version   uint16
	Type      TransactionType
	Sender    string
	Receiver  string
	Amount    Amount
	Fee       uint64
	Nonce     uint64
	Timestamp uint64
	Payload   []byte
}

// SignableBytes renders the canonical byte layout of the transaction:
//
//	version    2 bytes, little-endian
//	tx type    wire label, NUL-terminated
//	sender     address bytes, NUL-terminated
//	receiver   address bytes, NUL-terminated
//	amount     8 bytes little-endian value, then NUL-terminated ticker
//	fee        8 bytes, little-endian
//	nonce      8 bytes, little-endian
//	timestamp  8 bytes, little-endian
//	payload    0x00 if empty, else 0x01 + 4-byte little-endian length + bytes
func (t Transaction) SignableBytes() []byte {
	buf := make([]byte, 0, 128+len(t.Payload))
	buf = binary.LittleEndian.AppendUint16(buf, t.Version)
	buf = append(buf, t.Type.WireLabel()...)
	buf = append(buf, 0x00)
	buf = append(buf, t.Sender...)
	buf = append(buf, 0x00)
	buf = append(buf, t.Receiver...)
	buf = append(buf, 0x00)
	buf = binary.LittleEndian.AppendUint64(buf, t.Amount.Value)
	buf = append(buf, t.Amount.Currency...)
	buf = append(buf, 0x00)
	buf = binary.LittleEndian.AppendUint64(buf, t.Fee)
	buf = binary.LittleEndian.AppendUint64(buf, t.Nonce)
	buf = binary.LittleEndian.AppendUint64(buf, t.Timestamp)
	if len(t.Payload) > 0 {
		buf = append(buf, 0x01)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(t.Payload)))
		buf = append(buf, t.Payload...)
	} else {
		buf = append(buf, 0x00)
	}
	return buf
}

// ID returns the transaction identifier: the hex encoding of the SHA-256
// digest of the SHA-256 digest of the signable bytes. The id is never
// stored on the transaction; it is recomputed on demand.
func (t Transaction) ID() string {
	inner := sha256.Sum256(t.SignableBytes())
	outer := sha256.Sum256(inner[:])
	return hex.EncodeToString(outer[:])
}

// SignedTransaction couples a transaction with the signature and public
// key that authorize it. Possession of a SignedTransaction proves nothing
// by itself: consumers must call Verify.
type SignedTransaction struct {
	Transaction Transaction
	Signature   []byte
	PublicKey   []byte
}

// Sign derives a keypair from the 32-byte seed and signs the
// transaction's signable bytes. It does not check that the derived
// address matches the transaction's sender; a mismatched signer produces
// a SignedTransaction that will fail Verify.
func Sign(tx Transaction, seed []byte) (SignedTransaction, error) {
	kp, err := identity.KeypairFromSeed(seed)
	if err != nil {
		return SignedTransaction{}, err
	}
	defer kp.Wipe()
	return SignedTransaction{
		Transaction: tx,
		Signature:   kp.Sign(tx.SignableBytes()),
		PublicKey:   kp.PublicKey(),
	}, nil
}

// Verify reports whether the signed transaction is authentic. Two
// independent checks are required:
//
//  1. the signature verifies against the embedded public key over the
//     re-derived signable bytes, and
//  2. the embedded public key decodes to exactly the address the
//     transaction declares as sender.
//
// A sender address that fails to decode yields false: verification is a
// boolean predicate, not an error path.
func (s SignedTransaction) Verify() bool {
	if !identity.Verify(
		s.PublicKey,
		s.Transaction.SignableBytes(),
		s.Signature,
	) {
		return false
	}
	senderPub, err := identity.PublicKeyFromNovaID(s.Transaction.Sender)
	if err != nil {
		return false
	}
	return bytes.Equal(senderPub, s.PublicKey)
}
