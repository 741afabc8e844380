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
	"github.com/alissonlinneker/nova-protocol/wallet"
)

func runKeygen(f *globalFlags) {
	flagset := flag.NewFlagSet("keygen", flag.ExitOnError)
	passFlag := flagset.String("passphrase", "", "keystore passphrase")
	seedHex := flagset.String(
		"seed",
		"",
		"optional 32-byte hex seed for deterministic key derivation",
	)
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	var kp *identity.Keypair
	var err error
	if *seedHex != "" {
		var seed []byte
		seed, err = hex.DecodeString(*seedHex)
		if err != nil {
			fmt.Printf("Invalid seed hex: %s\n", err)
			os.Exit(1)
		}
		kp, err = identity.KeypairFromSeed(seed)
	} else {
		kp, err = identity.GenerateKeypair()
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	defer kp.Wipe()

	ks, err := wallet.NewKeystore(f.keystoreDir)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	address, err := ks.Store(kp, passphrase(*passFlag))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", address)
}

func runList(f *globalFlags) {
	ks, err := wallet.NewKeystore(f.keystoreDir)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	addresses, err := ks.List()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for _, address := range addresses {
		fmt.Printf("%s\n", address)
	}
}
