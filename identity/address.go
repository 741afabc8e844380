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

import (
	"fmt"

	"github.com/alissonlinneker/nova-protocol/bech32"
)

// AddressHrp is the human-readable prefix shared by all NOVA addresses.
const AddressHrp = "nova"

// NewNovaID encodes a 32-byte Ed25519 public key as a bech32 NOVA address.
// The result is lower case and starts with "nova1".
func NewNovaID(publicKey []byte) (string, error) {
	if len(publicKey) != PublicKeySize {
		return "", &InvalidLengthError{
			What: "public key",
			Want: PublicKeySize,
			Got:  len(publicKey),
		}
	}
	addr, err := bech32.Encode(AddressHrp, publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return addr, nil
}

// PublicKeyFromNovaID decodes a NOVA address back to the 32-byte public
// key it encodes. The HRP must be exactly "nova" and the payload exactly
// 32 bytes; the bech32 checksum is the authoritative integrity check.
func PublicKeyFromNovaID(address string) ([]byte, error) {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return nil, err
	}
	if hrp != AddressHrp {
		return nil, &InvalidPrefixError{
			Want: AddressHrp,
			Got:  hrp,
		}
	}
	if len(data) != PublicKeySize {
		return nil, &InvalidLengthError{
			What: "decoded public key",
			Want: PublicKeySize,
			Got:  len(data),
		}
	}
	return data, nil
}
