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

import "laptudirm.com/x/mess/pkg/piece"

// State is the outcome of the game at the current Position.
type State int

const (
	InProgress State = iota
	Checkmate
	Draw
)

func (s State) String() string {
	switch s {
	case Checkmate:
		return "mate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// GameState classifies the current position. No other draw rules
// (repetition, fifty-move) are evaluated, only checkmate, stalemate,
// and in-progress.
func (p *Position) GameState() State {
	if len(p.LegalMoves()) > 0 {
		return InProgress
	}

	l := p.analyze()
	if l.checkerCount > 0 {
		return Checkmate
	}
	return Draw
}

// Winner returns the side that delivered checkmate. Callers must first
// confirm GameState() == Checkmate.
func (p *Position) Winner() piece.Color {
	return p.SideToMove.Other()
}
