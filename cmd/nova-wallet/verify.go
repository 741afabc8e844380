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
	"os"

	"github.com/alissonlinneker/nova-protocol/ledger"
)

// runVerify checks a signed transaction in interchange JSON form and
// prints its id on success. Exits non-zero when verification fails.
func runVerify(f *globalFlags) {
	flagset := flag.NewFlagSet("verify", flag.ExitOnError)
	inFile := flagset.String(
		"file",
		"",
		"signed transaction JSON file (defaults to stdin)",
	)
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	data := readInput(*inFile)
	var signed ledger.SignedTransaction
	if err := json.Unmarshal(data, &signed); err != nil {
		fmt.Printf("Invalid signed transaction JSON: %s\n", err)
		os.Exit(1)
	}
	if !signed.Verify() {
		fmt.Printf("FAILED: signature does not verify for sender %s\n",
			signed.Transaction.Sender)
		os.Exit(1)
	}
	fmt.Printf("OK %s\n", signed.Transaction.ID())
}
