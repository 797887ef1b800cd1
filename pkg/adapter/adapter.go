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

// Package adapter translates core types (Move, Eval, Position) to the
// JSON shapes an HTTP/WebSocket host consumes from the core. This
// package does not implement a server: it implements exactly the three
// producer functions a host needs, plus the ApplyLongMove helper a host
// uses to resolve and apply a long-algebraic move, rejecting illegal ones.
package adapter

import (
	"errors"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/search/eval"
)

// ErrIllegalMove is returned by ApplyLongMove when the given long-algebraic
// string does not name a member of the position's current legal moves.
var ErrIllegalMove = errors.New("adapter: move is not legal in the current position")

// Move is move_to_json's shape: {"long", "from", "to", "promo"}.
type Move struct {
	Long  string  `json:"long"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Promo *string `json:"promo"`
}

var promoLetter = map[move.Flag]string{
	move.PromoQueen:  "q",
	move.PromoRook:   "r",
	move.PromoBishop: "b",
	move.PromoKnight: "n",
}

// MoveToJSON renders m as its external JSON move shape.
func MoveToJSON(m move.Move) Move {
	out := Move{
		Long: m.String(),
		From: m.From().String(),
		To:   m.To().String(),
	}
	if letter, ok := promoLetter[m.Flag()]; ok {
		out.Promo = &letter
	}
	return out
}

// Score is score_to_json's shape: {"cp", "mate"}, exactly one populated.
type Score struct {
	CP   *int `json:"cp"`
	Mate *int `json:"mate"`
}

// ScoreToJSON renders cp as its external JSON score shape: a forced mate
// (|cp| > eval.MateThreshold) is reported as a signed move count instead
// of a centipawn score.
func ScoreToJSON(cp eval.Eval) Score {
	if moves, ok := eval.MateDistance(cp); ok {
		return Score{Mate: &moves}
	}
	centipawns := int(cp)
	return Score{CP: &centipawns}
}

// BoardStatus is board_status's shape: {"legal", "fen", "status", "lastMove"}.
type BoardStatus struct {
	Legal    bool    `json:"legal"`
	FEN      *string `json:"fen"`
	Status   string  `json:"status"`
	LastMove string  `json:"lastMove"`
}

// StatusOf renders p's external JSON status shape for a position that a
// legal move has already been applied to.
func StatusOf(p *board.Position, lastMove string) BoardStatus {
	fen := p.FEN()
	return BoardStatus{
		Legal:    true,
		FEN:      &fen,
		Status:   p.GameState().String(),
		LastMove: lastMove,
	}
}

// ApplyLongMove resolves s against p's legal moves and, if legal, applies
// it and returns the resulting BoardStatus. If s is not legal, p is left
// unmodified and ApplyLongMove returns ErrIllegalMove alongside a
// {"legal": false, "fen": null, ...} status.
func ApplyLongMove(p *board.Position, s string) (BoardStatus, error) {
	m, err := p.ParseMove(s)
	if err != nil {
		return BoardStatus{
			Legal:    false,
			FEN:      nil,
			Status:   p.GameState().String(),
			LastMove: s,
		}, ErrIllegalMove
	}

	p.MakeMove(m)
	return StatusOf(p, m.String()), nil
}
