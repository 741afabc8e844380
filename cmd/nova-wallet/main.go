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
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

type globalFlags struct {
	flagset     *flag.FlagSet
	keystoreDir string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	defaultDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultDir = filepath.Join(home, ".nova", "keystore")
	}
	f.flagset.StringVar(
		&f.keystoreDir,
		"keystore",
		defaultDir,
		"directory holding encrypted key files",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "keygen":
			runKeygen(f)
		case "address":
			runAddress(f)
		case "list":
			runList(f)
		case "sign":
			runSign(f)
		case "verify":
			runVerify(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf(
			"You must specify a subcommand (keygen, address, list, sign, verify)\n",
		)
		os.Exit(1)
	}
}

// passphrase returns the flag value if set, falling back to the
// NOVA_WALLET_PASSPHRASE environment variable.
func passphrase(flagValue string) []byte {
	if flagValue != "" {
		return []byte(flagValue)
	}
	if env := os.Getenv("NOVA_WALLET_PASSPHRASE"); env != "" {
		return []byte(env)
	}
	fmt.Printf("You must specify -passphrase or set NOVA_WALLET_PASSPHRASE\n")
	os.Exit(1)
	return nil
}
