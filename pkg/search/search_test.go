// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package search_test

import (
	"strings"
	"testing"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/search"
)

// TestBestMoveFromStart: from the starting FEN, BestMove(1) returns some
// move; applying it yields a Position whose FEN's side-to-move is "b".
func TestBestMoveFromStart(t *testing.T) {
	p := board.NewStartingPosition()
	e := search.NewEngine(p)

	m := e.BestMove(1)
	if m == move.Null {
		t.Fatal("expected a move from the starting position")
	}

	p.MakeMove(m)
	fields := strings.Fields(p.FEN())
	if fields[1] != "b" {
		t.Errorf("side to move after %s = %q, want \"b\"", m, fields[1])
	}
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate with Ra8#.
	p, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	e := search.NewEngine(p)
	m := e.BestMove(2)

	p.MakeMove(m)
	if p.GameState() != board.Checkmate {
		t.Errorf("move %s did not deliver checkmate, game state = %v", m, p.GameState())
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	p, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := p.ParseMove("e1e8")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(m)

	e := search.NewEngine(p)
	if got := e.BestMove(3); got != move.Null {
		t.Errorf("BestMove on a terminal position = %s, want the null move", got)
	}
}

func TestEvaluateSymmetric(t *testing.T) {
	p := board.NewStartingPosition()
	e := search.NewEngine(p)
	if got := e.Evaluate(); got != 0 {
		t.Errorf("starting position eval = %d, want 0 (symmetric)", got)
	}
}
