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

package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alissonlinneker/nova-protocol/identity"
	"github.com/alissonlinneker/nova-protocol/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeystore(t *testing.T) *Keystore {
	t.Helper()
	ks, err := NewKeystore(t.TempDir())
	require.NoError(t, err)
	return ks
}

func TestStoreLoadRoundTrip(t *testing.T) {
	ks := newTestKeystore(t)
	kp, err := identity.KeypairFromSeed(test.Seed(0x42))
	require.NoError(t, err)

	address, err := ks.Store(kp, []byte("correct horse"))
	require.NoError(t, err)
	expectedAddress, err := kp.Address()
	require.NoError(t, err)
	assert.Equal(t, expectedAddress, address)

	loaded, err := ks.Load(address, []byte("correct horse"))
	require.NoError(t, err)
	defer loaded.Wipe()
	assert.Equal(t, kp.PublicKey(), loaded.PublicKey())
	assert.Equal(t, test.Seed(0x42), loaded.Seed())
}

func TestLoadWrongPassphrase(t *testing.T) {
	ks := newTestKeystore(t)
	kp, err := identity.KeypairFromSeed(test.Seed(0x42))
	require.NoError(t, err)
	address, err := ks.Store(kp, []byte("right"))
	require.NoError(t, err)

	_, err = ks.Load(address, []byte("wrong"))
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestLoadUnknownAddress(t *testing.T) {
	ks := newTestKeystore(t)
	_, err := ks.Load("nova1doesnotexist", []byte("x"))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStoreDuplicate(t *testing.T) {
	ks := newTestKeystore(t)
	kp, err := identity.KeypairFromSeed(test.Seed(0x42))
	require.NoError(t, err)
	_, err = ks.Store(kp, []byte("pass"))
	require.NoError(t, err)
	_, err = ks.Store(kp, []byte("pass"))
	assert.ErrorIs(t, err, ErrKeyExists)
}

func TestDeleteAndList(t *testing.T) {
	ks := newTestKeystore(t)

	addresses := make([]string, 0, 2)
	for _, fill := range []byte{0x01, 0x02} {
		kp, err := identity.KeypairFromSeed(test.Seed(fill))
		require.NoError(t, err)
		address, err := ks.Store(kp, []byte("pass"))
		require.NoError(t, err)
		addresses = append(addresses, address)
	}

	listed, err := ks.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, addresses, listed)

	require.NoError(t, ks.Delete(addresses[0]))
	listed, err = ks.List()
	require.NoError(t, err)
	assert.Equal(t, []string{addresses[1]}, listed)

	assert.ErrorIs(t, ks.Delete(addresses[0]), ErrKeyNotFound)
}

func TestKeyFileIsNotPlaintext(t *testing.T) {
	dir := t.TempDir()
	ks, err := NewKeystore(dir)
	require.NoError(t, err)
	seed := test.Seed(0x42)
	kp, err := identity.KeypairFromSeed(seed)
	require.NoError(t, err)
	address, err := ks.Store(kp, []byte("pass"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, address+keyFileExt))
	require.NoError(t, err)
	assert.NotContains(t, string(data), string(seed))
}

func TestRenamedKeyFileFailsToDecrypt(t *testing.T) {
	// The address is bound into the AEAD, so a key file renamed to another
	// address must not decrypt.
	dir := t.TempDir()
	ks, err := NewKeystore(dir)
	require.NoError(t, err)
	kp, err := identity.KeypairFromSeed(test.Seed(0x42))
	require.NoError(t, err)
	address, err := ks.Store(kp, []byte("pass"))
	require.NoError(t, err)

	other := "nova1impersonated"
	require.NoError(t, os.Rename(
		filepath.Join(dir, address+keyFileExt),
		filepath.Join(dir, other+keyFileExt),
	))
	_, err = ks.Load(other, []byte("pass"))
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}
