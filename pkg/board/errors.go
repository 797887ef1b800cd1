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

import "fmt"

// MalformedFEN reports that a FEN string failed to parse: it did not match
// the grammar, named a board without exactly one king per color, or listed
// a castling right whose rook or king is not on its home square.
type MalformedFEN struct {
	FEN    string
	Reason string
}

func (e *MalformedFEN) Error() string {
	return fmt.Sprintf("board: malformed fen %q: %s", e.FEN, e.Reason)
}

func malformed(fen, reason string) error {
	return &MalformedFEN{FEN: fen, Reason: reason}
}
