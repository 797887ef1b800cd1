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

package eval

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/piece"
)

// Evaluate scores a position: terminal cases return -Mate (the side to
// move is checkmated) or Draw;
// otherwise the score is material plus piece-square, from the
// perspective of the side to move.
func Evaluate(p *board.Position) Eval {
	switch p.GameState() {
	case board.Checkmate:
		return -Mate
	case board.Draw:
		return Draw
	}

	us, them := p.SideToMove, p.SideToMove.Other()
	return materialAndPST(p, us) - materialAndPST(p, them)
}

func materialAndPST(p *board.Position, c piece.Color) Eval {
	var score Eval
	mirror := c == piece.Black

	for kind := piece.Pawn; kind <= piece.King; kind++ {
		bb := p.PiecesByKind[c][kind]
		score += Material[kind] * Eval(bb.Count())

		for bb != bitboard.Empty {
			s := bb.Pop()
			if mirror {
				s = s.Mirror()
			}
			score += PST[kind][s]
		}
	}

	return score
}
