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

package main

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/colorstring"

	"laptudirm.com/x/mess/pkg/adapter"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/search"
)

// runBot implements the "bot" mode: if it is --color's turn to move in
// --fen, search it to --engine-depth and play the chosen move, printing
// the legal/status/fen fields of the pkg/adapter status of the resulting
// position as a plain text line.
func runBot(args []string) error {
	values, err := commonFlags().Parse(args)
	if err != nil {
		return err
	}

	fen := stringFlag(values, "--fen", board.StartFEN)
	p, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}

	depth := 4
	if s := stringFlag(values, "--engine-depth", ""); s != "" {
		depth, err = strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("bot: invalid --engine-depth %q: %w", s, err)
		}
	}

	botColor := piece.White
	if stringFlag(values, "--color", "w") == "b" {
		botColor = piece.Black
	}

	if p.GameState() != board.InProgress {
		colorstring.Println(fmt.Sprintf("[yellow]game already over: %s", p.GameState()))
		return nil
	}
	if p.SideToMove != botColor {
		colorstring.Println("[yellow]it is not the engine's turn to move")
		return nil
	}

	engine := search.NewEngine(p)
	score := engine.Evaluate()
	m := engine.BestMove(depth)
	if m == 0 {
		colorstring.Println("[red]no legal moves: SearchAtTerminal")
		return nil
	}

	p.MakeMove(m)
	status := adapter.StatusOf(p, m.String())

	colorstring.Printf("[green]engine plays %s[reset] (eval %s)\n", m, score)
	fmt.Printf("status: legal=%v status=%s fen=%s\n", status.Legal, status.Status, *status.FEN)
	return nil
}
