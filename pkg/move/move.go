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

// Package move declares the packed Move representation and its flags.
package move

import (
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Move is a chess move packed into 16 bits: from (6), to (6), flag (4).
type Move uint16

const (
	fromWidth = 6
	toWidth   = 6

	fromOffset = 0
	toOffset   = fromOffset + fromWidth
	flagOffset = toOffset + toWidth

	fromMask = (1 << fromWidth) - 1
	toMask   = (1 << toWidth) - 1
	flagMask = 0xF
)

// Flag identifies special move behaviour beyond a plain from->to move.
type Flag uint16

const (
	Normal Flag = iota
	EnPassant
	PawnDoublePush
	CastleKingside
	CastleQueenside
	PromoQueen
	PromoRook
	PromoBishop
	PromoKnight
)

// Null is the zero Move, representing "no move". It is never produced by
// legal move generation and is used as a sentinel return value, e.g. by
// a search invoked on a position with no legal moves.
const Null Move = 0

// New packs a from/to/flag triple into a Move.
func New(from, to square.Square, flag Flag) Move {
	return Move(from&fromMask)<<fromOffset |
		Move(to&toMask)<<toOffset |
		Move(flag&flagMask)<<flagOffset
}

// From returns the origin square.
func (m Move) From() square.Square {
	return square.Square((m >> fromOffset) & fromMask)
}

// To returns the destination square.
func (m Move) To() square.Square {
	return square.Square((m >> toOffset) & toMask)
}

// Flag returns the move's flag.
func (m Move) Flag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= PromoQueen
}

// PromotionKind returns the promoted-to piece kind for a promotion move.
// The caller must first check IsPromotion.
func (m Move) PromotionKind() piece.Kind {
	switch m.Flag() {
	case PromoQueen:
		return piece.Queen
	case PromoRook:
		return piece.Rook
	case PromoBishop:
		return piece.Bishop
	case PromoKnight:
		return piece.Knight
	default:
		panic("move: PromotionKind called on non-promotion move")
	}
}

// String renders the move in long-algebraic form: "<from><to>[promo]",
// e.g. "e2e4", "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoSuffix[m.Flag()]
	}
	return s
}

var promoSuffix = map[Flag]string{
	PromoQueen:  "q",
	PromoRook:   "r",
	PromoBishop: "b",
	PromoKnight: "n",
}
