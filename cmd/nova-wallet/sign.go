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
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alissonlinneker/nova-protocol/ledger"
	"github.com/alissonlinneker/nova-protocol/wallet"
)

// runSign reads a transaction in interchange JSON form, signs it with a
// keystore key, and writes the signed interchange JSON to stdout.
func runSign(f *globalFlags) {
	flagset := flag.NewFlagSet("sign", flag.ExitOnError)
	keyAddress := flagset.String(
		"key",
		"",
		"keystore address of the signing key (defaults to the transaction sender)",
	)
	passFlag := flagset.String("passphrase", "", "keystore passphrase")
	inFile := flagset.String(
		"file",
		"",
		"transaction JSON file (defaults to stdin)",
	)
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	data := readInput(*inFile)
	var tx ledger.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		fmt.Printf("Invalid transaction JSON: %s\n", err)
		os.Exit(1)
	}

	address := *keyAddress
	if address == "" {
		address = tx.Sender
	}
	ks, err := wallet.NewKeystore(f.keystoreDir)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	kp, err := ks.Load(address, passphrase(*passFlag))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	defer kp.Wipe()

	signed, err := ledger.Sign(tx, kp.Seed())
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out, err := json.Marshal(signed)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", out)
}

func readInput(path string) []byte {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return data
}
