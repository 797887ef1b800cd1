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
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// legality bundles everything LegalMoves needs computed once per call:
// the enemy attack set, the checking pieces, each friendly piece's
// pin-restricted destination mask, and the evasion mask.
type legality struct {
	us, them piece.Color
	kingSq   square.Square

	attackedByEnemy bitboard.Board
	checkers        bitboard.Board
	checkerCount    int
	evasionMask     bitboard.Board

	pinned      [64]bool
	pinnedLimit [64]bitboard.Board // meaningful only where pinned[s] is true
}

// analyze computes a legality context for the side to move.
func (p *Position) analyze() legality {
	us := p.SideToMove
	them := us.Other()
	kingSq := p.KingSquare(us)

	l := legality{us: us, them: them, kingSq: kingSq}
	l.attackedByEnemy, l.checkers, l.checkerCount = p.kingSafety(us, them, kingSq)

	switch l.checkerCount {
	case 0:
		l.evasionMask = bitboard.Universe
	case 1:
		checkerSq := l.checkers.LSB()
		l.evasionMask = attacks.Between[kingSq][checkerSq] | bitboard.Squares[checkerSq]
	default:
		l.evasionMask = bitboard.Empty // two checkers: only king moves
	}

	p.computePins(&l)
	return l
}

// kingSafety computes the set of squares attacked by `them` (with `us`'s
// king treated as transparent for sliding attacks, so a king cannot
// step along the same ray it is checked on), and the set of `them`
// pieces currently giving check to `us`'s king.
func (p *Position) kingSafety(us, them piece.Color, kingSq square.Square) (attacked, checkers bitboard.Board, checkerCount int) {
	pawns := p.PiecesByKind[them][piece.Pawn]
	for bb := pawns; bb != bitboard.Empty; {
		attacked |= attacks.Pawn[them][bb.Pop()]
	}

	knights := p.PiecesByKind[them][piece.Knight]
	for bb := knights; bb != bitboard.Empty; {
		attacked |= attacks.Knight[bb.Pop()]
	}

	diagSliders := p.PiecesByKind[them][piece.Bishop] | p.PiecesByKind[them][piece.Queen]
	for bb := diagSliders; bb != bitboard.Empty; {
		attacked |= attacks.SlidingTransparent(bb.Pop(), p.AllOccupancy, kingSq, attacks.BishopDirs)
	}

	orthoSliders := p.PiecesByKind[them][piece.Rook] | p.PiecesByKind[them][piece.Queen]
	for bb := orthoSliders; bb != bitboard.Empty; {
		attacked |= attacks.SlidingTransparent(bb.Pop(), p.AllOccupancy, kingSq, attacks.RookDirs)
	}

	attacked |= attacks.King[p.KingSquare(them)]

	// Checkers: `them` pieces directly attacking kingSq, computed against
	// the real occupancy (the king is the ray's target, not a blocker).
	checkers |= attacks.Pawn[us][kingSq] & p.PiecesByKind[them][piece.Pawn]
	checkers |= attacks.Knight[kingSq] & p.PiecesByKind[them][piece.Knight]
	checkers |= attacks.Sliding(kingSq, p.AllOccupancy, attacks.BishopDirs) & diagSliders
	checkers |= attacks.Sliding(kingSq, p.AllOccupancy, attacks.RookDirs) & orthoSliders

	return attacked, checkers, checkers.Count()
}

// computePins walks each of the 8 directions from the friendly king to
// find absolute pins, plus the en-passant discovered-check edge case
// where two pawns sit side by side in front of a rook or queen.
func (p *Position) computePins(l *legality) {
	for _, d := range attacks.QueenDirs {
		p.pinOnRay(l, d)
	}

	if sq, ok := p.enPassantDiscoveredCheckPawn(l.us, l.kingSq); ok {
		l.pinned[sq] = true
		l.pinnedLimit[sq] = bitboard.Universe &^ bitboard.Squares[p.EnPassantTarget]
	}
}

func (p *Position) pinOnRay(l *legality, d attacks.Direction) {
	isDiagonal := d.DF != 0 && d.DR != 0

	var candidate square.Square = square.None
	to := attacks.Step(l.kingSq, d.DF, d.DR)
	for to != square.None {
		pc := p.Squares[to]
		if !pc.IsEmpty() {
			if candidate == square.None {
				if pc.Color != l.us {
					return // first piece hit is an enemy piece: no pin possible
				}
				candidate = to
			} else {
				// second piece hit: is it an aligned enemy slider?
				if pc.Color == l.them && isSliderAlignedWith(pc.Kind, isDiagonal) {
					l.pinned[candidate] = true
					l.pinnedLimit[candidate] = attacks.Between[l.kingSq][to] | bitboard.Squares[to]
				}
				return
			}
		}
		to = attacks.Step(to, d.DF, d.DR)
	}
}

func isSliderAlignedWith(k piece.Kind, diagonal bool) bool {
	switch k {
	case piece.Queen:
		return true
	case piece.Bishop:
		return diagonal
	case piece.Rook:
		return !diagonal
	default:
		return false
	}
}

// enPassantDiscoveredCheckPawn detects the en-passant discovered-check
// edge case: on a horizontal ray from the king, if
// exactly two pawns (one friendly, one enemy) sit between the king and an
// enemy rook/queen, and the enemy pawn is the one that just double-pushed
// (its square directly behind it equals EnPassantTarget), then performing
// the en-passant capture would uncover the rank to the rook. It returns
// the friendly pawn's square and true if this applies.
func (p *Position) enPassantDiscoveredCheckPawn(us piece.Color, kingSq square.Square) (square.Square, bool) {
	if p.EnPassantTarget == square.None {
		return square.None, false
	}
	them := us.Other()

	var pawnRank square.Rank
	switch p.EnPassantTarget.Rank() {
	case square.Rank3:
		pawnRank = square.Rank4
	case square.Rank6:
		pawnRank = square.Rank5
	default:
		return square.None, false
	}
	if kingSq.Rank() != pawnRank {
		return square.None, false
	}

	for _, fileStep := range [2]int{1, -1} {
		occupied := scanRank(p, kingSq, fileStep)
		if len(occupied) < 3 {
			continue
		}

		pa, pb, sliderSq := occupied[0], occupied[1], occupied[2]
		pieceA, pieceB, pieceC := p.Squares[pa], p.Squares[pb], p.Squares[sliderSq]

		if pieceA.Kind != piece.Pawn || pieceB.Kind != piece.Pawn || pieceA.Color == pieceB.Color {
			continue
		}
		if pieceC.Color != them || (pieceC.Kind != piece.Rook && pieceC.Kind != piece.Queen) {
			continue
		}

		var friendlyPawn, enemyPawn square.Square
		if pieceA.Color == us {
			friendlyPawn, enemyPawn = pa, pb
		} else {
			friendlyPawn, enemyPawn = pb, pa
		}

		var behind square.Square
		if them == piece.White {
			behind = enemyPawn - 8
		} else {
			behind = enemyPawn + 8
		}
		if behind == p.EnPassantTarget {
			return friendlyPawn, true
		}
	}

	return square.None, false
}

// scanRank returns every occupied square on kingSq's rank walking in the
// given file direction (+1 east, -1 west), nearest first.
func scanRank(p *Position, from square.Square, fileStep int) []square.Square {
	var occupied []square.Square
	rank := from.Rank()
	for file := int(from.File()) + fileStep; file >= 0 && file <= 7; file += fileStep {
		s := square.From(square.File(file), rank)
		if !p.Squares[s].IsEmpty() {
			occupied = append(occupied, s)
		}
	}
	return occupied
}

// destinationMask returns the set of squares piece on square s may move
// to given the current pin/evasion state: pinned_limit[s] ∩ evasion_mask.
func (l *legality) destinationMask(s square.Square) bitboard.Board {
	if l.pinned[s] {
		return l.pinnedLimit[s] & l.evasionMask
	}
	return l.evasionMask
}
