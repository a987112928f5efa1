package perft

import "github.com/hailam/chessplay/internal/board"

// PoolCapacity bounds the seed pool the parallel driver's seed phase
// fills. 16384 comfortably covers the depth-2 fanout of every position
// in this package's bench suite; a seed phase that would overflow it is
// a caller-contract violation (an unexpectedly explosive position or a
// seed depth greater than the driver ever uses), not a runtime error to
// recover from, so Pool panics rather than growing silently.
const PoolCapacity = 16384

// Pool is a fixed-capacity collection of Board seeds, mirroring
// board.MoveBuffer's own fixed-array-plus-size shape.
type Pool struct {
	Boards [PoolCapacity]board.Board
	Size   int
}

func (p *Pool) add(b board.Board) {
	if p.Size >= PoolCapacity {
		panic("perft: seed pool capacity exceeded")
	}
	p.Boards[p.Size] = b
	p.Size++
}

// PopulatePool exhaustively enumerates every position reachable from b
// after exactly plies moves and appends each one to pool. It shares
// Perft's recursion shape but collects boards instead of summing a
// count, and is used by Parallel to build the work units each worker
// then runs Perft(seed, depth-plies) over.
func PopulatePool(b board.Board, plies int, pool *Pool) {
	if plies == 0 {
		pool.add(b)
		return
	}

	mb := board.GenerateMoves(b)
	for i := 0; i < mb.Size; i++ {
		PopulatePool(board.MakeMove(b, mb.Moves[i]), plies-1, pool)
	}
	for bb := mb.PawnPushes; bb != 0; {
		dest := bb.PopLSB()
		PopulatePool(board.MakePawnPush(b, dest), plies-1, pool)
	}
}
