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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation, with a1 = 0,
// h1 = 7, a8 = 56, and h8 = 63, i.e. square = rank*8 + file. The null
// square is represented using the "-" symbol.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int

// None represents the absence of a square, e.g. an unset en-passant target.
const None Square = -1

// constants representing every square on the board.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File represents a file (column) on a chessboard, a-file = 0, h-file = 7.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank represents a rank (row) on a chessboard, rank 1 = 0, rank 8 = 7.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// From creates a Square from a file and rank pair.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// New parses the two-character algebraic identifier of a square, or "-"
// for the null square.
func New(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		panic("square.New: invalid square id " + id)
	}
	file := File(id[0] - 'a')
	rank := Rank(id[1] - '1')
	return From(file, rank)
}

// File returns the file of the square.
func (s Square) File() File {
	return File(int(s) % 8)
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(int(s) / 8)
}

// Mirror returns the square reflected vertically across the board's
// horizontal midline, i.e. rank 1 <-> rank 8. Used to look up
// piece-square tables from the opponent's perspective.
func (s Square) Mirror() Square {
	return s ^ 56
}

// String renders the square in algebraic notation, or "-" for None.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}
