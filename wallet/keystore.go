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

// Package wallet implements an encrypted on-disk keystore for signing
// seeds. Each key is stored in its own file named after the account
// address, encrypted with ChaCha20-Poly1305 under a key derived from the
// passphrase with Argon2id. The envelope is CBOR.
package wallet

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alissonlinneker/nova-protocol/identity"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeystoreVersion is the envelope format version written to disk.
	KeystoreVersion = 1

	keyFileExt  = ".nova"
	keyFileMode = 0o600
	keyDirMode  = 0o700

	saltSize = 16

	// Argon2id parameters. Recorded in each envelope so they can be
	// raised later without breaking existing key files.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	ErrKeyNotFound     = errors.New("key not found in keystore")
	ErrKeyExists       = errors.New("key already exists in keystore")
	ErrWrongPassphrase = errors.New(
		"decryption failed: wrong passphrase or corrupted key file",
	)
)

// envelope is the CBOR structure written to each key file.
type envelope struct {
	Version      uint8  `cbor:"1,keyasint"`
	Address      string `cbor:"2,keyasint"`
	Salt         []byte `cbor:"3,keyasint"`
	ArgonTime    uint32 `cbor:"4,keyasint"`
	ArgonMemory  uint32 `cbor:"5,keyasint"`
	ArgonThreads uint8  `cbor:"6,keyasint"`
	Nonce        []byte `cbor:"7,keyasint"`
	Ciphertext   []byte `cbor:"8,keyasint"`
}

// Keystore stores encrypted seeds under a single directory, one file per
// account address.
type Keystore struct {
	dir string
}

// NewKeystore opens the keystore at dir, creating the directory if needed.
func NewKeystore(dir string) (*Keystore, error) {
	if err := os.MkdirAll(dir, keyDirMode); err != nil {
		return nil, fmt.Errorf("create keystore directory: %w", err)
	}
	return &Keystore{dir: dir}, nil
}

// Store encrypts the keypair's seed under the passphrase and writes it to
// disk. It returns the keypair's address, which is also the lookup key for
// Load and Delete. Storing an address that already has a key file fails
// with ErrKeyExists.
func (ks *Keystore) Store(kp *identity.Keypair, passphrase []byte) (string, error) {
	address, err := kp.Address()
	if err != nil {
		return "", fmt.Errorf("derive address: %w", err)
	}
	path := ks.keyPath(address)
	if _, err := os.Stat(path); err == nil {
		return "", ErrKeyExists
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := deriveKey(passphrase, salt)
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	seed := kp.Seed()
	// The address is bound as additional data so a key file cannot be
	// renamed to impersonate another account.
	ciphertext := aead.Seal(nil, nonce, seed, []byte(address))
	wipe(seed)

	data, err := cbor.Marshal(&envelope{
		Version:      KeystoreVersion,
		Address:      address,
		Salt:         salt,
		ArgonTime:    argonTime,
		ArgonMemory:  argonMemory,
		ArgonThreads: argonThreads,
		Nonce:        nonce,
		Ciphertext:   ciphertext,
	})
	if err != nil {
		return "", fmt.Errorf("encode key file: %w", err)
	}
	if err := os.WriteFile(path, data, keyFileMode); err != nil {
		return "", fmt.Errorf("write key file: %w", err)
	}
	return address, nil
}

// Load decrypts the seed stored for address and reconstructs its keypair.
// The caller owns the returned keypair and should Wipe it when done.
func (ks *Keystore) Load(address string, passphrase []byte) (*identity.Keypair, error) {
	data, err := os.ReadFile(ks.keyPath(address))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read key file: %w", err)
	}
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	if env.Version != KeystoreVersion {
		return nil, fmt.Errorf(
			"unsupported key file version %d",
			env.Version,
		)
	}

	key := argon2.IDKey(
		passphrase,
		env.Salt,
		env.ArgonTime,
		env.ArgonMemory,
		env.ArgonThreads,
		chacha20poly1305.KeySize,
	)
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	// Bind the lookup address, not the one recorded in the envelope, so a
	// renamed key file cannot impersonate another account.
	seed, err := aead.Open(nil, env.Nonce, env.Ciphertext, []byte(address))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	defer wipe(seed)

	kp, err := identity.KeypairFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("rebuild keypair: %w", err)
	}
	return kp, nil
}

// Delete removes the key file for address.
func (ks *Keystore) Delete(address string) error {
	err := os.Remove(ks.keyPath(address))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	return err
}

// List returns the addresses of all stored keys, in directory order.
func (ks *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, fmt.Errorf("read keystore directory: %w", err)
	}
	var addresses []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, keyFileExt) {
			continue
		}
		addresses = append(addresses, strings.TrimSuffix(name, keyFileExt))
	}
	return addresses, nil
}

func (ks *Keystore) keyPath(address string) string {
	return filepath.Join(ks.dir, address+keyFileExt)
}

func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(
		passphrase,
		salt,
		argonTime,
		argonMemory,
		argonThreads,
		chacha20poly1305.KeySize,
	)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
