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

// Package board implements a complete, mutable chess position: bitboards
// and piece grid kept coherent, legal move generation, incremental
// make/undo, game-state detection, and the FEN/long-algebraic external
// formats.
package board

import (
	"fmt"

	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Position is the canonical mutable chess state: bitboards, a redundant
// square-indexed piece grid, side to move, castling rights, and the
// en-passant target square.
type Position struct {
	// Squares is the piece-or-empty grid, redundant with the bitboards
	// below but kept coherent with them at all times.
	Squares [64]piece.Piece

	// PiecesByKind[color][kind] is the occupancy bitboard of that color's
	// pieces of that kind. Index 0 (piece.NoKind) is unused.
	PiecesByKind [piece.NColor][piece.NKind + 1]bitboard.Board

	// Occupancy[color] is the union of that color's piece bitboards.
	Occupancy [piece.NColor]bitboard.Board

	// AllOccupancy is Occupancy[White] | Occupancy[Black].
	AllOccupancy bitboard.Board

	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square

	// History is the LIFO stack of undo records, one per applied move.
	History []Undo

	// cache holds the last computed legal move list; cacheValid is
	// cleared by every mutation (MakeMove/UndoMove).
	cache      []move.Move
	cacheValid bool
}

// Undo holds everything needed to exactly reverse one MakeMove call.
type Undo struct {
	Move            move.Move
	Captured        piece.Piece // piece.Empty if the move was not a capture
	EnPassantTarget square.Square
	CastlingRights  castling.Rights
}

// New creates an empty Position with no pieces placed, White to move, no
// castling rights, and no en-passant target. Callers typically populate
// it via ParseFEN rather than using New directly.
func New() *Position {
	return &Position{
		EnPassantTarget: square.None,
	}
}

// NewStartingPosition creates a Position set up for a new game.
func NewStartingPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; a parse failure here is a
		// bug in this package, not a runtime condition.
		panic(err)
	}
	return p
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c piece.Color) square.Square {
	return p.PiecesByKind[c][piece.King].LSB()
}

// PieceAt returns the piece on square s, or piece.Empty.
func (p *Position) PieceAt(s square.Square) piece.Piece {
	return p.Squares[s]
}

// ClearSquare removes whatever piece (if any) stands on s from every
// bitboard and the square grid.
func (p *Position) ClearSquare(s square.Square) {
	pc := p.Squares[s]
	if pc.IsEmpty() {
		return
	}

	p.Occupancy[pc.Color].Clear(s)
	p.PiecesByKind[pc.Color][pc.Kind].Clear(s)
	p.AllOccupancy.Clear(s)
	p.Squares[s] = piece.Empty
}

// FillSquare places pc on square s, which must currently be empty.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	p.Occupancy[pc.Color].Set(s)
	p.PiecesByKind[pc.Color][pc.Kind].Set(s)
	p.AllOccupancy.Set(s)
	p.Squares[s] = pc
}

// invalidateCache discards the cached legal move list. Called by every
// position mutation.
func (p *Position) invalidateCache() {
	p.cacheValid = false
	p.cache = nil
}

// String renders the position as an 8x8 grid followed by its FEN, for
// debugging.
func (p *Position) String() string {
	var out string
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			out += p.Squares[s].String() + " "
		}
		out += "\n"
	}
	return fmt.Sprintf("%s\nFen: %s\n", out, p.FEN())
}
