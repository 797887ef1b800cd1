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

package board_test

import (
	"testing"

	"github.com/notnil/chess"
	"laptudirm.com/x/mess/pkg/board"
)

// oracleMoveCount constructs an independent notnil/chess game from fen and
// returns its count of valid moves, as a cross-check against this
// package's own LegalMoves. A single-implementation perft count cannot
// catch a bug shared between the generator and its test; an independent
// engine can.
func oracleMoveCount(t *testing.T, fen string) int {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("oracle: bad fen %q: %v", fen, err)
	}
	game := chess.NewGame(opt)
	return len(game.ValidMoves())
}

// TestPerftOracleAgreement walks two plies from a handful of positions
// with both this package's generator and notnil/chess, and asserts the
// leaf counts agree at every node reached. This is a supplement to
// TestPerftSuite (a single-implementation depth count), not a
// replacement: it catches bugs a self-consistent perft cannot.
func TestPerftOracleAgreement(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			p, err := board.ParseFEN(fen)
			if err != nil {
				t.Fatal(err)
			}

			ours := len(p.LegalMoves())
			theirs := oracleMoveCount(t, fen)
			if ours != theirs {
				t.Fatalf("root move count = %d, oracle = %d", ours, theirs)
			}

			for _, m := range p.LegalMoves() {
				p.MakeMove(m)
				childFEN := p.FEN()

				ours := len(p.LegalMoves())
				theirs := oracleMoveCount(t, childFEN)
				if ours != theirs {
					t.Errorf("after %s: move count = %d, oracle = %d (fen %q)", m, ours, theirs, childFEN)
				}

				p.UndoMove()
			}
		})
	}
}
