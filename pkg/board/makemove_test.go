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

package board_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/piece"
)

// TestMakeUndoRoundTrip checks the fundamental round-trip law:
// undo(make(P, m)) == P, for every legal move from a handful of positions
// covering captures, castling, a set en-passant target, and promotion.
func TestMakeUndoRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w KQkq d6 0 2",
		"8/P7/8/8/8/8/8/4k2K w - - 0 1",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p, err := board.ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", fen, err)
			}

			before := p.FEN()
			for _, m := range p.LegalMoves() {
				p.MakeMove(m)
				p.UndoMove()

				if after := p.FEN(); after != before {
					t.Fatalf("move %s: FEN changed %q -> %q", m, before, after)
				}
				if p.PiecesByKind[piece.White][piece.King].Count() != 1 ||
					p.PiecesByKind[piece.Black][piece.King].Count() != 1 {
					t.Fatalf("move %s: king count invariant broken", m)
				}
			}
		})
	}
}
