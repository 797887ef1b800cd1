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

import "laptudirm.com/x/mess/pkg/piece"

// Material holds the centipawn value of each piece kind.
var Material = [piece.NKind + 1]Eval{
	piece.NoKind: 0,
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   20_000,
}
