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
	"bytes"
	"testing"

	"github.com/alissonlinneker/nova-protocol/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedFixture builds a transaction whose sender address is derived from
// the returned seed, then signs it with that seed.
func signedFixture(t *testing.T) ([]byte, SignedTransaction) {
	t.Helper()
	seed := bytes.Repeat([]byte{0x11}, identity.SeedSize)
	kp, err := identity.KeypairFromSeed(seed)
	require.NoError(t, err)
	sender, err := kp.Address()
	require.NoError(t, err)

	receiverKp, err := identity.GenerateKeypair()
	require.NoError(t, err)
	receiver, err := receiverKp.Address()
	require.NoError(t, err)

	amount, err := NewAmount(1_000_000, "NOVA")
	require.NoError(t, err)
	tx, err := NewTxBuilder().
		Type(TxTypeTransfer).
		Sender(sender).
		Receiver(receiver).
		Amount(amount).
		Fee(100).
		Nonce(1).
		Timestamp(1_700_000_000_000).
		Build()
	require.NoError(t, err)

	signed, err := Sign(tx, seed)
	require.NoError(t, err)
	return seed, signed
}

func TestSignAndVerify(t *testing.T) {
	_, signed := signedFixture(t)
	assert.Len(t, signed.Signature, identity.SignatureSize)
	assert.Len(t, signed.PublicKey, identity.PublicKeySize)
	assert.True(t, signed.Verify())
}

func TestSignInvalidSeed(t *testing.T) {
	tx := vectorTransaction(t)
	_, err := Sign(tx, make([]byte, 16))
	var lenErr *identity.InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestSignIsDeterministic(t *testing.T) {
	seed, signed := signedFixture(t)
	resigned, err := Sign(signed.Transaction, seed)
	require.NoError(t, err)
	assert.Equal(t, signed.Signature, resigned.Signature)
	assert.Equal(t, signed.PublicKey, resigned.PublicKey)
}

func TestVerifyDetectsTampering(t *testing.T) {
	_, signed := signedFixture(t)
	require.True(t, signed.Verify())

	mutations := map[string]func(tx *Transaction){
		"version":   func(tx *Transaction) { tx.Version = 2 },
		"type":      func(tx *Transaction) { tx.Type = TxTypeTokenBurn },
		"receiver":  func(tx *Transaction) { tx.Receiver = "nova1attacker" },
		"value":     func(tx *Transaction) { tx.Amount.Value *= 1000 },
		"currency":  func(tx *Transaction) { tx.Amount.Currency = "USD" },
		"fee":       func(tx *Transaction) { tx.Fee = 0 },
		"nonce":     func(tx *Transaction) { tx.Nonce++ },
		"timestamp": func(tx *Transaction) { tx.Timestamp++ },
		"payload":   func(tx *Transaction) { tx.Payload = []byte("x") },
	}
	for name, mutate := range mutations {
		tampered := signed
		mutate(&tampered.Transaction)
		assert.False(
			t,
			tampered.Verify(),
			"tampering with %s must fail verification",
			name,
		)
	}
}

func TestVerifyRejectsWrongSigner(t *testing.T) {
	// Sign a transaction whose declared sender belongs to someone else.
	_, signed := signedFixture(t)
	otherSeed := bytes.Repeat([]byte{0x22}, identity.SeedSize)
	forged, err := Sign(signed.Transaction, otherSeed)
	require.NoError(t, err)

	// The signature itself is cryptographically valid...
	assert.True(t, identity.Verify(
		forged.PublicKey,
		forged.Transaction.SignableBytes(),
		forged.Signature,
	))
	// ...but the signer is not the declared sender.
	assert.False(t, forged.Verify())
}

func TestVerifyRejectsSwappedPublicKey(t *testing.T) {
	_, signed := signedFixture(t)
	otherKp, err := identity.GenerateKeypair()
	require.NoError(t, err)
	signed.PublicKey = otherKp.PublicKey()
	assert.False(t, signed.Verify())
}

func TestVerifyRejectsCorruptedSignature(t *testing.T) {
	_, signed := signedFixture(t)
	signed.Signature[0] ^= 0xff
	assert.False(t, signed.Verify())
}

func TestVerifyUndecodableSenderIsFalse(t *testing.T) {
	// A sender address that fails bech32 decoding makes verification
	// return false rather than an error.
	seed := bytes.Repeat([]byte{0x33}, identity.SeedSize)
	amount, err := NewAmount(1, "NOVA")
	require.NoError(t, err)
	tx, err := NewTxBuilder().
		Type(TxTypeTransfer).
		Sender("nova1sender_test_vector"). // not a valid bech32 string
		Receiver("nova1receiver_test_vector").
		Amount(amount).
		Nonce(1).
		Timestamp(1).
		Build()
	require.NoError(t, err)
	signed, err := Sign(tx, seed)
	require.NoError(t, err)
	assert.False(t, signed.Verify())
}

func TestVerifyMalformedMaterial(t *testing.T) {
	_, signed := signedFixture(t)

	truncatedSig := signed
	truncatedSig.Signature = signed.Signature[:32]
	assert.False(t, truncatedSig.Verify())

	truncatedKey := signed
	truncatedKey.PublicKey = signed.PublicKey[:16]
	assert.False(t, truncatedKey.Verify())

	empty := SignedTransaction{}
	assert.False(t, empty.Verify())
}
