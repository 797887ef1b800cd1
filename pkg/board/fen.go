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
	"strconv"
	"strings"

	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses the standard six-field FEN grammar into a new
// Position. The halfmove clock and fullmove number fields are required
// by the grammar but their values are not retained; FEN re-emits fixed
// defaults for them.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, malformed(fen, "expected 6 space-separated fields")
	}

	p := New()

	if err := p.placePieces(fen, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = piece.White
	case "b":
		p.SideToMove = piece.Black
	default:
		return nil, malformed(fen, "active color must be w or b")
	}

	p.CastlingRights = castling.NewRights(fields[2])
	if err := p.validateCastlingRights(fen); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		if !isEnPassantSquare(fields[3]) {
			return nil, malformed(fen, "invalid en-passant target square "+fields[3])
		}
		p.EnPassantTarget = square.New(fields[3])
	}

	if err := p.validateKingCount(fen); err != nil {
		return nil, err
	}

	// fields[4] (halfmove clock) and fields[5] (fullmove number) are
	// accepted but not retained, 
	return p, nil
}

func (p *Position) placePieces(fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return malformed(fen, "piece placement must have 8 ranks")
	}

	for i, rankData := range ranks {
		rank := square.Rank(7 - i) // FEN lists rank 8 first
		file := square.FileA

		for _, c := range rankData {
			if file > square.FileH {
				return malformed(fen, "rank has more than 8 files")
			}

			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				continue
			}

			pc, ok := parsePieceLetter(c)
			if !ok {
				return malformed(fen, "invalid piece letter in placement")
			}
			p.FillSquare(square.From(file, rank), pc)
			file++
		}

		if file != square.FileH+1 {
			return malformed(fen, "rank does not sum to 8 files")
		}
	}

	return nil
}

const pieceLetters = "pnbrqkPNBRQK"

func parsePieceLetter(c rune) (piece.Piece, bool) {
	if c < 0 || c > 127 || !strings.ContainsRune(pieceLetters, c) {
		return piece.Empty, false
	}
	return piece.NewFromString(string(c)), true
}

func isEnPassantSquare(id string) bool {
	if len(id) != 2 {
		return false
	}
	if id[0] < 'a' || id[0] > 'h' {
		return false
	}
	return id[1] == '3' || id[1] == '6'
}

// validateKingCount enforces the MalformedFEN condition that a
// Position must have exactly one king per color.
func (p *Position) validateKingCount(fen string) error {
	if p.PiecesByKind[piece.White][piece.King].Count() != 1 {
		return malformed(fen, "must have exactly one white king")
	}
	if p.PiecesByKind[piece.Black][piece.King].Count() != 1 {
		return malformed(fen, "must have exactly one black king")
	}
	return nil
}

// validateCastlingRights enforces the MalformedFEN condition that a
// claimed castling right implies the relevant king and rook are on
// their home squares.
func (p *Position) validateCastlingRights(fen string) error {
	check := func(right castling.Rights, king, rook square.Square, color piece.Color) error {
		if !p.CastlingRights.Has(right) {
			return nil
		}
		if p.Squares[king] != piece.New(piece.King, color) {
			return malformed(fen, "castling right claimed without king on home square")
		}
		if p.Squares[rook] != piece.New(piece.Rook, color) {
			return malformed(fen, "castling right claimed without rook on home square")
		}
		return nil
	}

	if err := check(castling.WhiteKingside, square.E1, square.H1, piece.White); err != nil {
		return err
	}
	if err := check(castling.WhiteQueenside, square.E1, square.A1, piece.White); err != nil {
		return err
	}
	if err := check(castling.BlackKingside, square.E8, square.H8, piece.Black); err != nil {
		return err
	}
	if err := check(castling.BlackQueenside, square.E8, square.A8, piece.Black); err != nil {
		return err
	}
	return nil
}

// FEN renders the Position back into the standard six-field grammar.
func (p *Position) FEN() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			s := square.From(square.File(file), square.Rank(rank))
			pc := p.Squares[s]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.CastlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.EnPassantTarget.String())
	// halfmove clock and fullmove number are not tracked; re-emit fixed
	// defaults, 
	b.WriteString(" 0 1")

	return b.String()
}
