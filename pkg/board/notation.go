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
	"fmt"

	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// ParseMove resolves a long-algebraic move string ("<from><to>[promo]")
// against this Position's current legal moves, returning the Move with
// its flag intact.
//
// The naive approach of inferring PAWN_DOUBLE_PUSH, castling, or en passant
// from the from/to squares alone misclassifies any other piece whose move
// happens to match the same square pattern: a rank-1-to-rank-3 king
// move, for instance, is not a pawn double push. Instead, every flag
// is looked up from the matching entry in LegalMoves, never guessed.
func (p *Position) ParseMove(s string) (move.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return move.Null, fmt.Errorf("board: invalid move string %q", s)
	}

	from := square.New(s[0:2])
	to := square.New(s[2:4])

	var promo piece.Kind
	if len(s) == 5 {
		var ok bool
		promo, ok = promoKindFromLetter(s[4])
		if !ok {
			return move.Null, fmt.Errorf("board: invalid promotion suffix in %q", s)
		}
	}

	for _, m := range p.LegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if promo == piece.NoKind || m.PromotionKind() != promo {
				continue
			}
		} else if promo != piece.NoKind {
			continue
		}
		return m, nil
	}

	return move.Null, fmt.Errorf("board: %q is not a legal move", s)
}

func promoKindFromLetter(c byte) (piece.Kind, bool) {
	switch c {
	case 'q':
		return piece.Queen, true
	case 'r':
		return piece.Rook, true
	case 'b':
		return piece.Bishop, true
	case 'n':
		return piece.Knight, true
	default:
		return piece.NoKind, false
	}
}
