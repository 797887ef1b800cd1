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
)

func TestPerftStartingPosition(t *testing.T) {
	want := []int{20, 400, 8902, 197281, 4865609}

	for depth, nodes := range want {
		depth++ // table is 1-indexed
		if testing.Short() && depth > 4 {
			continue
		}

		p := board.NewStartingPosition()
		if got := p.Perft(depth); got != nodes {
			t.Errorf("perft(%d) = %d, want %d", depth, got, nodes)
		}
	}
}

// kiwipete and the other standard perft-suite positions, checked to depth 4.
var perftSuite = []struct {
	name  string
	fen   string
	depth int
	nodes int
}{
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		depth: 4,
		nodes: 4085603,
	},
	{
		name:  "position3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		depth: 4,
		nodes: 43238,
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		depth: 4,
		nodes: 422333,
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		depth: 4,
		nodes: 2103487,
	},
}

func TestPerftSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft suite in short mode")
	}

	for _, tt := range perftSuite {
		t.Run(tt.name, func(t *testing.T) {
			p, err := board.ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tt.fen, err)
			}

			if got := p.Perft(tt.depth); got != tt.nodes {
				t.Errorf("perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}
