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

// Package bitboard implements a 64-bit bitboard, one bit per square, and
// the primitive operations used to build move generation on top of it.
package bitboard

import (
	"math/bits"

	"laptudirm.com/x/mess/pkg/square"
)

// Board is a 64-bit bitboard. Bit i corresponds to square i, using the
// a1=0, h1=7, a8=56, h8=63 mapping from pkg/square.
type Board uint64

// Empty and Universe are the zero and all-set bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// Squares maps every square to the bitboard with only that square set.
var Squares [64]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// String renders the bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Board) String() string {
	var str string
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			if b.IsSet(s) {
				str += "1 "
			} else {
				str += ". "
			}
		}
		str += "\n"
	}
	return str
}

// IsSet reports whether the given square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets the given square in the bitboard.
func (b *Board) Set(s square.Square) {
	*b |= Squares[s]
}

// Clear clears the given square in the bitboard.
func (b *Board) Clear(s square.Square) {
	*b &^= Squares[s]
}

// Count returns the number of set squares, i.e. the population count.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest-indexed set square. The caller must ensure b is
// non-empty.
func (b Board) LSB() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Pop returns the lowest-indexed set square and clears it from the board,
// enabling the standard "iterate over set bits in ascending order" idiom.
func (b *Board) Pop() square.Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}
