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
	"strings"
	"testing"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/square"
)

func TestScenarioKingsOnlyInProgress(t *testing.T) {
	p, err := board.ParseFEN("8/8/8/8/8/8/4K3/4k3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if len(p.LegalMoves()) == 0 {
		t.Fatal("expected at least one legal move")
	}
	if p.GameState() != board.InProgress {
		t.Errorf("game state = %s, want InProgress", p.GameState())
	}
}

func TestScenarioStalemate(t *testing.T) {
	// Qf7 leaves the lone black king on h8 out of check with g8, g7 and
	// h7 all covered.
	p, err := board.ParseFEN("7k/8/8/8/8/8/8/K4Q2 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m, err := p.ParseMove("f1f7")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(m)

	if got := p.GameState(); got != board.Draw {
		t.Errorf("game state = %s, want Draw", got)
	}
}

func TestScenarioEnPassantRankGating(t *testing.T) {
	p, err := board.ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w KQkq d6 0 2")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range p.LegalMoves() {
		if m.Flag() == move.EnPassant {
			t.Errorf("unexpected en-passant move %s for White on this rank", m)
		}
	}

	// mirror: black to move, white pawn just double-pushed to d4 beside
	// the black pawn on e4.
	mirrored, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 3")
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, m := range mirrored.LegalMoves() {
		if m.Flag() == move.EnPassant {
			found = true
		}
	}
	if !found {
		t.Error("expected an en-passant capture to be legal for Black")
	}
}

func TestScenarioCastling(t *testing.T) {
	p, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var kingside, queenside bool
	for _, m := range p.LegalMoves() {
		switch m.Flag() {
		case move.CastleKingside:
			kingside = true
		case move.CastleQueenside:
			queenside = true
		}
	}
	if !kingside || !queenside {
		t.Fatalf("expected both castles to be legal, kingside=%v queenside=%v", kingside, queenside)
	}

	m, err := p.ParseMove("e1g1")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(m)

	fen := p.FEN()
	fields := strings.Fields(fen)
	if !strings.HasPrefix(fields[0], "r3k2r") {
		t.Fatalf("unexpected black-side placement in %q", fen)
	}
	if fields[2] != "kq" {
		t.Errorf("castling rights = %q, want \"kq\"", fields[2])
	}
	if p.PieceAt(square.F1).IsEmpty() {
		t.Error("expected rook on f1 after kingside castle")
	}
	if p.PieceAt(square.G1).IsEmpty() {
		t.Error("expected king on g1 after kingside castle")
	}
}

func TestScenarioPromotion(t *testing.T) {
	p, err := board.ParseFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m, err := p.ParseMove("a7a8q")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(m)

	if !strings.HasPrefix(p.FEN(), "Q7") {
		t.Errorf("fen after promotion = %q, want Q on a8", p.FEN())
	}
}
