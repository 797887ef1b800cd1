// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command chesscore is an informative CLI host around pkg/board and
// pkg/search: the modes, flags, and output here do not constrain the
// core and exist only to exercise the engine interactively.
package main

import (
	"fmt"
	"os"

	"laptudirm.com/x/mess/pkg/flag"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	mode, args := os.Args[1], os.Args[2:]

	var err error
	switch mode {
	case "board":
		err = runBoard(args)
	case "bot":
		err = runBot(args)
	case "test":
		err = runTest(args)
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "chesscore: unknown mode %q\n\n%s\n", mode, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "chesscore:", err)
		os.Exit(1)
	}
}

// commonFlags builds the --fen/--depth/--engine-depth/--color schema
// shared by every mode.
func commonFlags() flag.Schema {
	s := flag.NewSchema()
	s.Single("--fen")
	s.Single("--depth")
	s.Single("--engine-depth")
	s.Single("--color")
	s.Button("--chart")
	return s
}

func stringFlag(values flag.Values, name, fallback string) string {
	v, ok := values[name]
	if !ok || !v.Set {
		return fallback
	}
	return v.Value.(string)
}
