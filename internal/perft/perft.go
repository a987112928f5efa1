// Package perft counts leaf positions at a fixed depth from a starting
// Board, recursively exercising the move generator and move-application
// functions in internal/board, and drives a parallel worker pool over a
// pre-enumerated seed pool for deeper searches.
package perft

import "github.com/hailam/chessplay/internal/board"

// Perft returns the number of leaf positions reachable from b in
// exactly depth plies. depth 1 short-circuits to CountMoves, which
// counts without materialising a move list; deeper calls recurse
// through GenerateMoves, MakeMove and the batched MakePawnPush path.
func Perft(b board.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		return int64(board.CountMoves(b))
	}

	mb := board.GenerateMoves(b)
	var nodes int64
	for i := 0; i < mb.Size; i++ {
		nodes += Perft(board.MakeMove(b, mb.Moves[i]), depth-1)
	}
	for bb := mb.PawnPushes; bb != 0; {
		dest := bb.PopLSB()
		nodes += Perft(board.MakePawnPush(b, dest), depth-1)
	}
	return nodes
}
