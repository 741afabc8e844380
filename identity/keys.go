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

// Package identity provides NOVA key material and the address codec.
//
// Identities are Ed25519 keypairs. The public key encodes directly into a
// bech32 address under the "nova" HRP, so an address round-trips to the
// exact 32-byte verifying key with no intermediate hashing.
package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	// SeedSize is the size of the Ed25519 seed material in bytes.
	SeedSize = 32

	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = 32

	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = 64
)

// Keypair holds an Ed25519 signing key and its derived verifying key. The
// seed is the sole authorization secret; call Wipe when the keypair is no
// longer needed.
type Keypair struct {
	priv ed25519.PrivateKey
}

// GenerateKeypair creates a keypair from cryptographically random seed
// material.
func GenerateKeypair() (*Keypair, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	kp, err := KeypairFromSeed(seed)
	wipeBytes(seed)
	return kp, err
}

// KeypairFromSeed derives a keypair deterministically from a 32-byte seed.
// The same seed always yields the same keypair.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, &InvalidLengthError{
			What: "seed",
			Want: SeedSize,
			Got:  len(seed),
		}
	}
	return &Keypair{
		priv: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Seed returns a copy of the 32-byte seed material.
func (k *Keypair) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, k.priv.Seed())
	return seed
}

// PublicKey returns a copy of the 32-byte verifying key.
func (k *Keypair) PublicKey() []byte {
	pub := make([]byte, PublicKeySize)
	copy(pub, k.priv[SeedSize:])
	return pub
}

// Address returns the bech32 NOVA address for this keypair's public key.
func (k *Keypair) Address() (string, error) {
	return NewNovaID(k.priv[SeedSize:])
}

// Sign produces the 64-byte Ed25519 signature over message. Ed25519 is a
// deterministic scheme: the same keypair and message always produce the
// identical signature.
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// Wipe overwrites the keypair's secret material with zeroes. The keypair
// must not be used afterward.
func (k *Keypair) Wipe() {
	wipeBytes(k.priv)
}

// Verify reports whether signature is a valid Ed25519 signature by
// publicKey over message. Malformed keys or signatures of the wrong
// length yield false rather than an error.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}

// ValidatePublicKey checks that publicKey is 32 bytes and decodes to a
// canonical point on the Ed25519 curve. Address and signature handling do
// not require this check, but callers accepting keys from untrusted input
// can use it to reject non-canonical encodings early.
func ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != PublicKeySize {
		return &InvalidLengthError{
			What: "public key",
			Want: PublicKeySize,
			Got:  len(publicKey),
		}
	}
	if _, err := new(edwards25519.Point).SetBytes(publicKey); err != nil {
		return fmt.Errorf("public key is not a valid curve point: %w", err)
	}
	return nil
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
