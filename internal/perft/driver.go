package perft

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessplay/internal/board"
)

// seedDepth is the number of plies the driver exhaustively enumerates
// up front: the resulting pool's positions may contain duplicates
// reached by transposition, which is fine since perft counts by path,
// not by distinct position.
const seedDepth = 2

// Parallel runs perft at depth from b across workers goroutines. It
// first enumerates every position reachable after seedDepth plies into
// a shared, read-only Pool (the seed phase, run on the calling
// goroutine), then launches workers that each atomically claim the next
// unclaimed seed, run Perft(seed, depth-seedDepth) sequentially, and
// atomically fold their subtotal into a shared accumulator. The
// returned total is deterministic: addition is commutative and every
// seed is processed exactly once, regardless of worker scheduling.
//
// Parallel requires depth > seedDepth; callers with a shallower depth
// should call Perft directly.
func Parallel(ctx context.Context, b board.Board, depth, workers int) (int64, error) {
	if depth <= seedDepth {
		panic("perft: Parallel requires depth > 2")
	}
	if workers < 1 {
		workers = 1
	}

	var pool Pool
	PopulatePool(b, seedDepth, &pool)

	var cursor atomic.Int64
	var total atomic.Int64

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				idx := cursor.Add(1) - 1
				if idx >= int64(pool.Size) {
					return nil
				}
				total.Add(Perft(pool.Boards[idx], depth-seedDepth))
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}
