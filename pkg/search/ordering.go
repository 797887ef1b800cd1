// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

package search

import (
	"sort"

	"laptudirm.com/x/mess/pkg/attacks"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/search/eval"
	"laptudirm.com/x/mess/pkg/square"
)

// scoreMove is the move-ordering heuristic: higher scores are searched
// first.
//
//   - capturing: 10 * victim_value - attacker_value (MVV-LVA style).
//   - plus value(promotion_piece) if m is a promotion.
//   - minus value(moving_piece) if the destination is attacked by the
//     enemy ("don't hang your piece").
func scoreMove(p *board.Position, m move.Move) eval.Eval {
	var score eval.Eval

	attacker := p.PieceAt(m.From())
	victim := p.PieceAt(m.To())

	switch {
	case m.Flag() == move.EnPassant:
		score += 10*eval.Material[piece.Pawn] - eval.Material[piece.Pawn]
	case !victim.IsEmpty():
		score += 10*eval.Material[victim.Kind] - eval.Material[attacker.Kind]
	}

	if m.IsPromotion() {
		score += eval.Material[m.PromotionKind()]
	}

	if isAttackedBy(p, m.To(), attacker.Color.Other()) {
		score -= eval.Material[attacker.Kind]
	}

	return score
}

// isAttackedBy reports whether square s is attacked by any piece of color
// by on the current board, ignoring the moving piece (it has not yet
// vacated m.From() in the Position used for ordering, which is acceptable
// for a move-ordering heuristic that need not be exact).
func isAttackedBy(p *board.Position, s square.Square, by piece.Color) bool {
	for bb := p.PiecesByKind[by][piece.Pawn]; bb != bitboard.Empty; {
		if attacks.Pawn[by][bb.Pop()].IsSet(s) {
			return true
		}
	}
	for bb := p.PiecesByKind[by][piece.Knight]; bb != bitboard.Empty; {
		if attacks.Knight[bb.Pop()].IsSet(s) {
			return true
		}
	}
	for bb := p.PiecesByKind[by][piece.Bishop] | p.PiecesByKind[by][piece.Queen]; bb != bitboard.Empty; {
		if attacks.Sliding(bb.Pop(), p.AllOccupancy, attacks.BishopDirs).IsSet(s) {
			return true
		}
	}
	for bb := p.PiecesByKind[by][piece.Rook] | p.PiecesByKind[by][piece.Queen]; bb != bitboard.Empty; {
		if attacks.Sliding(bb.Pop(), p.AllOccupancy, attacks.RookDirs).IsSet(s) {
			return true
		}
	}
	return attacks.King[p.KingSquare(by)].IsSet(s)
}

// orderMoves sorts moves by descending scoreMove value. Stable sort keeps
// ties in their original LegalMoves order (grouped by piece kind,
// ascending square within each kind), making the
// ordering repeatable for identical positions.
func orderMoves(p *board.Position, moves []move.Move) {
	scores := make(map[move.Move]eval.Eval, len(moves))
	for _, m := range moves {
		scores[m] = scoreMove(p, m)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return scores[moves[i]] > scores[moves[j]]
	})
}
