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
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/4K3/4k3 w - - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			p, err := board.ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", fen, err)
			}

			got := p.FEN()
			wantFields := strings.Fields(fen)[:4]
			gotFields := strings.Fields(got)[:4]
			for i := range wantFields {
				if wantFields[i] != gotFields[i] {
					t.Errorf("field %d: got %q, want %q (full: %q)", i, gotFields[i], wantFields[i], got)
				}
			}
		})
	}
}

func TestParseFENMalformed(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // missing rank
		"8/8/8/8/8/8/8/8 w - - 0 1",                              // no kings
		"4k3/8/8/8/8/8/8/4K2K w - - 0 1",                         // two white kings
		"4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1",                       // rights without rooks
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			if _, err := board.ParseFEN(fen); err == nil {
				t.Errorf("ParseFEN(%q): expected error, got nil", fen)
			}
		})
	}
}

func TestNewStartingPosition(t *testing.T) {
	p := board.NewStartingPosition()
	if got := len(p.LegalMoves()); got != 20 {
		t.Errorf("starting position has %d legal moves, want 20", got)
	}
}
