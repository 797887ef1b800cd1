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
	"laptudirm.com/x/mess/pkg/attacks"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// LegalMoves returns every fully legal move for the side to move.
// Legality is enforced up front via pin masks and an evasion mask
// rather than by a make/unmake pseudo-legality test. The result is
// cached until the next MakeMove/UndoMove.
func (p *Position) LegalMoves() []move.Move {
	if p.cacheValid {
		return p.cache
	}

	l := p.analyze()
	moves := make([]move.Move, 0, 48)

	if l.checkerCount < 2 {
		moves = p.generatePawnMoves(moves, &l)
		moves = p.generateKnightMoves(moves, &l)
		moves = p.generateSlidingMoves(moves, &l, piece.Bishop)
		moves = p.generateSlidingMoves(moves, &l, piece.Rook)
		moves = p.generateSlidingMoves(moves, &l, piece.Queen)
	}
	// with two checkers, only king moves are legal
	moves = p.generateKingMoves(moves, &l)

	p.cache = moves
	p.cacheValid = true
	return moves
}

func (p *Position) generatePawnMoves(moves []move.Move, l *legality) []move.Move {
	us := l.us
	forward, startRank, promoRank := 8, square.Rank2, square.Rank8
	if us == piece.Black {
		forward, startRank, promoRank = -8, square.Rank7, square.Rank1
	}

	for bb := p.PiecesByKind[us][piece.Pawn]; bb != bitboard.Empty; {
		s := bb.Pop()
		mask := l.destinationMask(s)

		single := square.Square(int(s) + forward)
		if p.Squares[single].IsEmpty() {
			if mask.IsSet(single) {
				moves = appendPawnMove(moves, s, single, promoRank)
			}
			if s.Rank() == startRank {
				double := square.Square(int(s) + 2*forward)
				if p.Squares[double].IsEmpty() && mask.IsSet(double) {
					moves = append(moves, move.New(s, double, move.PawnDoublePush))
				}
			}
		}

		for capBB := attacks.Pawn[us][s]; capBB != bitboard.Empty; {
			t := capBB.Pop()
			target := p.Squares[t]

			switch {
			case !target.IsEmpty() && target.Color == l.them:
				if mask.IsSet(t) {
					moves = appendPawnMove(moves, s, t, promoRank)
				}

			case t == p.EnPassantTarget:
				if l.pinned[s] && !l.pinnedLimit[s].IsSet(t) {
					continue
				}
				capturedPawn := epCapturedPawnSquare(t, us)
				if l.evasionMask.IsSet(t) || l.checkers.IsSet(capturedPawn) {
					moves = append(moves, move.New(s, t, move.EnPassant))
				}
			}
		}
	}

	return moves
}

func appendPawnMove(moves []move.Move, from, to square.Square, promoRank square.Rank) []move.Move {
	if to.Rank() == promoRank {
		return append(moves,
			move.New(from, to, move.PromoQueen),
			move.New(from, to, move.PromoRook),
			move.New(from, to, move.PromoBishop),
			move.New(from, to, move.PromoKnight),
		)
	}
	return append(moves, move.New(from, to, move.Normal))
}

// epCapturedPawnSquare returns the square of the pawn captured by an
// en-passant move landing on target, played by a pawn of color us.
func epCapturedPawnSquare(target square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return square.Square(int(target) - 8)
	}
	return square.Square(int(target) + 8)
}

func (p *Position) generateKnightMoves(moves []move.Move, l *legality) []move.Move {
	us := l.us
	for bb := p.PiecesByKind[us][piece.Knight]; bb != bitboard.Empty; {
		s := bb.Pop()
		if l.pinned[s] {
			continue // a pinned knight can never move legally
		}

		targets := attacks.Knight[s] &^ p.Occupancy[us] & l.evasionMask
		for targets != bitboard.Empty {
			moves = append(moves, move.New(s, targets.Pop(), move.Normal))
		}
	}
	return moves
}

func (p *Position) generateSlidingMoves(moves []move.Move, l *legality, kind piece.Kind) []move.Move {
	us := l.us

	var dirs []attacks.Direction
	switch kind {
	case piece.Bishop:
		dirs = attacks.BishopDirs
	case piece.Rook:
		dirs = attacks.RookDirs
	case piece.Queen:
		dirs = attacks.QueenDirs
	}

	for bb := p.PiecesByKind[us][kind]; bb != bitboard.Empty; {
		s := bb.Pop()
		targets := attacks.Sliding(s, p.AllOccupancy, dirs) &^ p.Occupancy[us] & l.destinationMask(s)
		for targets != bitboard.Empty {
			moves = append(moves, move.New(s, targets.Pop(), move.Normal))
		}
	}
	return moves
}

func (p *Position) generateKingMoves(moves []move.Move, l *legality) []move.Move {
	us := l.us
	kingSq := l.kingSq

	targets := attacks.King[kingSq] &^ p.Occupancy[us] &^ l.attackedByEnemy
	for targets != bitboard.Empty {
		moves = append(moves, move.New(kingSq, targets.Pop(), move.Normal))
	}

	if l.checkerCount == 0 {
		moves = p.generateCastling(moves, l)
	}
	return moves
}

// generateCastling generates castling moves: for each right still held,
// the path between king and rook must be empty, and the king's start,
// transit, and landing squares must all be absent from the enemy attack
// set.
func (p *Position) generateCastling(moves []move.Move, l *legality) []move.Move {
	us := l.us

	if us == piece.White {
		if p.CastlingRights.Has(castling.WhiteKingside) &&
			p.squaresEmpty(square.F1, square.G1) &&
			p.squaresSafe(l, square.E1, square.F1, square.G1) {
			moves = append(moves, move.New(square.E1, square.G1, move.CastleKingside))
		}
		if p.CastlingRights.Has(castling.WhiteQueenside) &&
			p.squaresEmpty(square.D1, square.C1, square.B1) &&
			p.squaresSafe(l, square.E1, square.D1, square.C1) {
			moves = append(moves, move.New(square.E1, square.C1, move.CastleQueenside))
		}
		return moves
	}

	if p.CastlingRights.Has(castling.BlackKingside) &&
		p.squaresEmpty(square.F8, square.G8) &&
		p.squaresSafe(l, square.E8, square.F8, square.G8) {
		moves = append(moves, move.New(square.E8, square.G8, move.CastleKingside))
	}
	if p.CastlingRights.Has(castling.BlackQueenside) &&
		p.squaresEmpty(square.D8, square.C8, square.B8) &&
		p.squaresSafe(l, square.E8, square.D8, square.C8) {
		moves = append(moves, move.New(square.E8, square.C8, move.CastleQueenside))
	}
	return moves
}

func (p *Position) squaresEmpty(squares ...square.Square) bool {
	for _, s := range squares {
		if !p.Squares[s].IsEmpty() {
			return false
		}
	}
	return true
}

func (p *Position) squaresSafe(l *legality, squares ...square.Square) bool {
	for _, s := range squares {
		if l.attackedByEnemy.IsSet(s) {
			return false
		}
	}
	return true
}
