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

// Package bech32 implements the checksummed base-32 encoding used for NOVA
// addresses. It is a general-purpose codec with no knowledge of address
// semantics: callers supply a human-readable prefix (HRP) and arbitrary
// bytes, and get back a string of the form "hrp1<data><checksum>".
//
// The checksum is the 6-symbol BCH code from BIP-173, computed over the
// expanded HRP and the 5-bit data groups and verified against the constant 1.
package bech32

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// charset is the fixed 32-character alphabet for 5-bit groups.
	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// separator divides the HRP from the data part. The data part never
	// contains it, so the last occurrence in a string is authoritative.
	separator = '1'

	// ChecksumLength is the number of trailing checksum symbols.
	ChecksumLength = 6
)

// Checksum generator coefficients for the BCH code over GF(2).
var generator = [5]uint32{
	0x3b6a57b2,
	0x26508e6d,
	0x1ea119fa,
	0x3d4233dd,
	0x2a1462b3,
}

var (
	// ErrMixedCase is returned when the input contains both upper and
	// lower case characters. Bech32 strings are valid in exactly one case.
	ErrMixedCase = errors.New("bech32: mixed case string")

	// ErrInvalidSeparator is returned when the separator is missing, has
	// no HRP before it, or leaves fewer than 6 characters of data+checksum.
	ErrInvalidSeparator = errors.New("bech32: invalid separator position")

	// ErrInvalidCharacter is returned when a character outside the
	// 32-character alphabet appears in the data part, or a character
	// outside the printable US-ASCII range appears in the HRP.
	ErrInvalidCharacter = errors.New("bech32: invalid character")

	// ErrInvalidChecksum is returned when the 6-symbol checksum does not
	// verify.
	ErrInvalidChecksum = errors.New("bech32: invalid checksum")

	// ErrInvalidPadding is returned when regrouping the data part back to
	// 8-bit bytes leaves non-zero or excess padding bits.
	ErrInvalidPadding = errors.New("bech32: invalid padding")
)

// charsetRev maps an ASCII byte to its 5-bit value, or -1 if the byte is
// not part of the alphabet.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i, c := range charset {
		charsetRev[c] = int8(i)
	}
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// hrpExpand produces the checksum input for the HRP: the high bits of each
// character, a zero, then the low bits of each character.
func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&0x1f)
	}
	return ret
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := polymod(values) ^ 1
	ret := make([]byte, ChecksumLength)
	for i := range ret {
		ret[i] = byte(mod>>uint(5*(5-i))) & 0x1f
	}
	return ret
}

func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}

// convertBits regroups data between bit widths. Encoding (8 -> 5) pads the
// final group with zero bits; decoding (5 -> 8) rejects incomplete groups
// and non-zero padding.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxVal := uint32(1)<<toBits - 1
	ret := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, fmt.Errorf(
				"%w: value %d exceeds %d bits",
				ErrInvalidCharacter,
				v,
				fromBits,
			)
		}
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits&maxVal))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits)&maxVal))
		}
	} else if bits >= fromBits {
		return nil, fmt.Errorf("%w: excess padding bits", ErrInvalidPadding)
	} else if acc<<(toBits-bits)&maxVal != 0 {
		return nil, fmt.Errorf("%w: non-zero padding bits", ErrInvalidPadding)
	}
	return ret, nil
}

// Encode converts data to 5-bit groups, appends the checksum, and joins
// the result with the HRP as "hrp1<symbols>". The HRP must be non-empty,
// lower case, and within the printable US-ASCII range.
func Encode(hrp string, data []byte) (string, error) {
	if hrp == "" {
		return "", fmt.Errorf("%w: empty HRP", ErrInvalidSeparator)
	}
	if hrp != strings.ToLower(hrp) {
		return "", ErrMixedCase
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", fmt.Errorf(
				"%w: HRP character %q out of range",
				ErrInvalidCharacter,
				hrp[i],
			)
		}
	}
	grouped, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	grouped = append(grouped, createChecksum(hrp, grouped)...)
	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(grouped))
	sb.WriteString(hrp)
	sb.WriteByte(separator)
	for _, g := range grouped {
		sb.WriteByte(charset[g])
	}
	return sb.String(), nil
}

// Decode splits a bech32 string into its HRP and original 8-bit data,
// verifying the checksum. Mixed-case input is rejected; otherwise the
// string is treated case-insensitively and the returned HRP is lower case.
func Decode(encoded string) (string, []byte, error) {
	lower := strings.ToLower(encoded)
	if encoded != lower && encoded != strings.ToUpper(encoded) {
		return "", nil, ErrMixedCase
	}
	encoded = lower
	sepIdx := strings.LastIndexByte(encoded, separator)
	if sepIdx < 1 || sepIdx+ChecksumLength+1 > len(encoded) {
		return "", nil, ErrInvalidSeparator
	}
	hrp := encoded[:sepIdx]
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", nil, fmt.Errorf(
				"%w: HRP character %q out of range",
				ErrInvalidCharacter,
				hrp[i],
			)
		}
	}
	dataPart := encoded[sepIdx+1:]
	data := make([]byte, 0, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		c := dataPart[i]
		if c >= 128 || charsetRev[c] == -1 {
			return "", nil, fmt.Errorf(
				"%w: %q at position %d",
				ErrInvalidCharacter,
				c,
				sepIdx+1+i,
			)
		}
		data = append(data, byte(charsetRev[c]))
	}
	if !verifyChecksum(hrp, data) {
		return "", nil, ErrInvalidChecksum
	}
	decoded, err := convertBits(data[:len(data)-ChecksumLength], 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, decoded, nil
}
