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

// Package attacks implements the precomputed attack tables: knight,
// king, and pawn-capture attacks per square, and ray-between masks for
// every aligned square pair.
//
// Sliding-piece (bishop/rook/queen) attacks are deliberately NOT
// precomputed via magic bitboards; they are generated at call time by
// stepping outward in each applicable direction until blocked. This is
// slower than a magic lookup, but is acceptable for a depth-limited
// engine and keeps the implementation free of an offline magic-number
// search.
package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Knight holds the knight attack bitboard for every square.
var Knight [64]bitboard.Board

// King holds the king attack bitboard for every square, excluding castling
// (castling legality is computed by pkg/board, not by this table).
var King [64]bitboard.Board

// Pawn holds the diagonal-forward capture targets for a pawn of the given
// color on the given square.
var Pawn [piece.NColor][64]bitboard.Board

// Between holds, for every aligned (orthogonal or diagonal) square pair,
// the bitboard of squares strictly between them. It is the zero bitboard
// for unaligned pairs, and for a square paired with itself.
var Between [64][64]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Knight[s] = knightAttacksFrom(s)
		King[s] = kingAttacksFrom(s)
		Pawn[piece.White][s] = pawnAttacksFrom(s, piece.White)
		Pawn[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}

	initRayTables()
}

// step steps from a square by (df, dr) file/rank deltas, returning
// square.None if the result falls off the board. Shared by the knight,
// king, and sliding-piece attack generators below.
func step(s square.Square, df, dr int) square.Square {
	file := int(s.File()) + df
	rank := int(s.Rank()) + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return square.None
	}
	return square.From(square.File(file), square.Rank(rank))
}

func knightAttacksFrom(from square.Square) bitboard.Board {
	var b bitboard.Board
	deltas := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for _, d := range deltas {
		if to := step(from, d[0], d[1]); to != square.None {
			b.Set(to)
		}
	}
	return b
}

func kingAttacksFrom(from square.Square) bitboard.Board {
	var b bitboard.Board
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if to := step(from, df, dr); to != square.None {
				b.Set(to)
			}
		}
	}
	return b
}

func pawnAttacksFrom(from square.Square, c piece.Color) bitboard.Board {
	var b bitboard.Board
	dr := 1
	if c == piece.Black {
		dr = -1
	}
	if to := step(from, -1, dr); to != square.None {
		b.Set(to)
	}
	if to := step(from, 1, dr); to != square.None {
		b.Set(to)
	}
	return b
}
