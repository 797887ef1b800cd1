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

package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/square"
)

// Direction is a single (file, rank) step, exported so callers outside
// this package (pkg/board's pin-mask walk) can reuse the same direction
// sets and step function rather than duplicating them.
type Direction struct{ DF, DR int }

var (
	RookDirs   = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	BishopDirs = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	QueenDirs  = append(append([]Direction{}, RookDirs...), BishopDirs...)
)

var (
	rookDirs   = RookDirs
	bishopDirs = BishopDirs
	queenDirs  = QueenDirs
)

// Step steps from a square by (df, dr) file/rank deltas, returning
// square.None if the result falls off the board.
func Step(s square.Square, df, dr int) square.Square {
	return step(s, df, dr)
}

// Sliding returns the attack set of a sliding piece on square s along the
// given directions, stepping outward one square at a time and stopping
// upon (and including) the first occupied square in each direction. No
// magic bitboards or precomputed sliding tables are used.
func Sliding(s square.Square, occ bitboard.Board, dirs []Direction) bitboard.Board {
	var attacks bitboard.Board
	for _, d := range dirs {
		for to := step(s, d.DF, d.DR); to != square.None; to = step(to, d.DF, d.DR) {
			attacks.Set(to)
			if occ.IsSet(to) {
				break
			}
		}
	}
	return attacks
}

// SlidingTransparent is Sliding, but with the given square treated as
// empty regardless of occupancy. Used to compute the enemy attack set
// with the friendly king removed from the board, so
// that the king's flight squares along a checking ray are correctly seen
// as attacked (otherwise the king itself would block the ray and the
// square behind it would look safe).
func SlidingTransparent(s square.Square, occ bitboard.Board, transparent square.Square, dirs []Direction) bitboard.Board {
	occ = occ &^ bitboard.Squares[transparent]
	return Sliding(s, occ, dirs)
}
