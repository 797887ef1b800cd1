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

package board

import (
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// MakeMove applies m, which must have been produced by LegalMoves for the
// current Position, and pushes an Undo record.
func (p *Position) MakeMove(m move.Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	mover := p.Squares[from]

	undo := Undo{
		Move:            m,
		Captured:        p.Squares[to],
		EnPassantTarget: p.EnPassantTarget,
		CastlingRights:  p.CastlingRights,
	}

	if !undo.Captured.IsEmpty() {
		p.ClearSquare(to)
	}

	p.ClearSquare(from)
	p.FillSquare(to, mover)

	p.EnPassantTarget = square.None

	switch flag {
	case move.PawnDoublePush:
		p.EnPassantTarget = square.Square((int(from) + int(to)) / 2)

	case move.EnPassant:
		capturedSq := epCapturedPawnSquare(to, mover.Color)
		undo.Captured = p.Squares[capturedSq]
		p.ClearSquare(capturedSq)

	case move.CastleKingside:
		rookFrom, rookTo := castleRookSquares(mover.Color, true)
		p.FillSquare(rookTo, p.Squares[rookFrom])
		p.ClearSquare(rookFrom)

	case move.CastleQueenside:
		rookFrom, rookTo := castleRookSquares(mover.Color, false)
		p.FillSquare(rookTo, p.Squares[rookFrom])
		p.ClearSquare(rookFrom)

	default:
		if m.IsPromotion() {
			p.ClearSquare(to)
			p.FillSquare(to, piece.New(m.PromotionKind(), mover.Color))
		}
	}

	p.updateCastlingRights(mover, from, to)

	p.SideToMove = p.SideToMove.Other()
	p.History = append(p.History, undo)
	p.invalidateCache()
}

// UndoMove reverses the effect of the most recent MakeMove call.
func (p *Position) UndoMove() {
	n := len(p.History)
	undo := p.History[n-1]
	p.History = p.History[:n-1]

	p.CastlingRights = undo.CastlingRights
	p.EnPassantTarget = undo.EnPassantTarget
	p.SideToMove = p.SideToMove.Other()

	m := undo.Move
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.SideToMove

	switch flag {
	case move.CastleKingside:
		rookFrom, rookTo := castleRookSquares(us, true)
		p.FillSquare(rookFrom, p.Squares[rookTo])
		p.ClearSquare(rookTo)
		p.ClearSquare(to)
		p.FillSquare(from, piece.New(piece.King, us))

	case move.CastleQueenside:
		rookFrom, rookTo := castleRookSquares(us, false)
		p.FillSquare(rookFrom, p.Squares[rookTo])
		p.ClearSquare(rookTo)
		p.ClearSquare(to)
		p.FillSquare(from, piece.New(piece.King, us))

	case move.EnPassant:
		p.ClearSquare(to)
		p.FillSquare(from, piece.New(piece.Pawn, us))
		capturedSq := epCapturedPawnSquare(to, us)
		p.FillSquare(capturedSq, undo.Captured)

	default:
		mover := p.Squares[to]
		if m.IsPromotion() {
			mover = piece.New(piece.Pawn, us)
		}
		p.ClearSquare(to)
		p.FillSquare(from, mover)
		if !undo.Captured.IsEmpty() {
			p.FillSquare(to, undo.Captured)
		}
	}

	p.invalidateCache()
}

// castleRookSquares returns the rook's home and destination squares for a
// castle of the given color and side (kingside or queenside).
func castleRookSquares(c piece.Color, kingside bool) (from, to square.Square) {
	switch {
	case c == piece.White && kingside:
		return square.H1, square.F1
	case c == piece.White && !kingside:
		return square.A1, square.D1
	case c == piece.Black && kingside:
		return square.H8, square.F8
	default:
		return square.A8, square.D8
	}
}

// updateCastlingRights clears a side's castling right whenever its king
// moves, whenever a rook leaves its home square, or
// whenever a rook on its home square is captured (covered by clearing on
// `to`, since that is where the captured piece stood).
func (p *Position) updateCastlingRights(mover piece.Piece, from, to square.Square) {
	switch {
	case mover.Kind == piece.King && mover.Color == piece.White:
		p.CastlingRights.Clear(castling.White)
	case mover.Kind == piece.King && mover.Color == piece.Black:
		p.CastlingRights.Clear(castling.Black)
	}

	p.clearRightForSquare(from)
	p.clearRightForSquare(to)
}

func (p *Position) clearRightForSquare(s square.Square) {
	switch s {
	case square.A1:
		p.CastlingRights.Clear(castling.WhiteQueenside)
	case square.H1:
		p.CastlingRights.Clear(castling.WhiteKingside)
	case square.A8:
		p.CastlingRights.Clear(castling.BlackQueenside)
	case square.H8:
		p.CastlingRights.Clear(castling.BlackKingside)
	}
}
