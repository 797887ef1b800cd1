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

// Package piece implements representations of chess pieces and colors.
//
// Piece is modeled as a proper sum type (Empty, or Occupied{Color, Kind})
// rather than packing color and kind bits into a single small integer:
// the bitwise-encoding trick buys nothing here because the hot paths of
// move generation operate on bitboards, not on the square-indexed piece
// grid this type backs.
package piece

// Color represents the color of a Piece or a side to move.
type Color int

const (
	White Color = iota
	Black

	NColor = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to its FEN "w"/"b" representation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic("piece: invalid color")
	}
}

// NewColor parses the FEN "w"/"b" representation of a Color.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: invalid color id " + id)
	}
}

// Kind represents the kind of a piece, independent of color. NoKind marks
// an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NKind = 6 // number of real kinds; NoKind is not counted
)

// String converts a Kind to its uppercase letter, as used in FEN and in
// long-algebraic promotion suffixes (lowercased by the caller where
// needed).
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Piece is a tagged value: either Empty, or a Kind occupied by a Color.
type Piece struct {
	Kind  Kind
	Color Color
}

// Empty is the distinguished value representing no piece on a square.
var Empty = Piece{Kind: NoKind}

// New creates an occupied Piece of the given kind and color.
func New(k Kind, c Color) Piece {
	return Piece{Kind: k, Color: c}
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// letters maps FEN piece letters to kinds, white pieces uppercase.
var letters = map[byte]Kind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// NewFromString parses a single FEN piece letter ("P", "n", ...) into a
// Piece. It panics on an invalid letter; callers validate the FEN grammar
// before calling this.
func NewFromString(id string) Piece {
	if len(id) != 1 {
		panic("piece: invalid piece id " + id)
	}

	c := id[0]
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lower = c + ('a' - 'A')
	}

	kind, ok := letters[lower]
	if !ok {
		panic("piece: invalid piece id " + id)
	}

	return New(kind, color)
}

// String renders the piece as its FEN letter, uppercase for White, "-" for
// Empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}

	s := p.Kind.String()
	if p.Color == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}
