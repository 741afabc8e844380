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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/alissonlinneker/nova-protocol/identity"
)

// runAddress converts between raw public keys and bech32 addresses.
func runAddress(f *globalFlags) {
	flagset := flag.NewFlagSet("address", flag.ExitOnError)
	pubkeyHex := flagset.String(
		"pubkey",
		"",
		"32-byte hex public key to encode as an address",
	)
	decode := flagset.String(
		"decode",
		"",
		"address to decode back to its hex public key",
	)
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	switch {
	case *pubkeyHex != "":
		publicKey, err := hex.DecodeString(*pubkeyHex)
		if err != nil {
			fmt.Printf("Invalid public key hex: %s\n", err)
			os.Exit(1)
		}
		address, err := identity.NewNovaID(publicKey)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", address)
	case *decode != "":
		publicKey, err := identity.PublicKeyFromNovaID(*decode)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", hex.EncodeToString(publicKey))
	default:
		fmt.Printf("You must specify one of -pubkey or -decode\n")
		os.Exit(1)
	}
}
