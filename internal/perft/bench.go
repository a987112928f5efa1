package perft

import (
	"context"
	"fmt"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// BenchCase is one row of the built-in perft regression suite: a
// literal FEN, a search depth, and the reference node count a correct
// generator must reproduce exactly.
type BenchCase struct {
	Name     string
	FEN      string
	Depth    int
	Expected int64
}

// BenchSuite is the authoritative set of end-to-end perft vectors a
// correct generator is judged against: the starting position, Kiwipete,
// and five further tactically dense positions covering en passant,
// castling (including its rotation-symmetric counterpart), and deep
// middlegame branching.
var BenchSuite = []BenchCase{
	{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 6, 119060324},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 5, 193690690},
	{"tricky EP", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 7, 178633661},
	{"tricky castling", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -", 6, 706045033},
	{"tricky castling rotated", "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ -", 6, 706045033},
	{"talkchess", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -", 5, 89941194},
	{"middlegame", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - -", 5, 164075551},
}

// BenchResult is one timed run of a BenchCase.
type BenchResult struct {
	BenchCase
	Got     int64
	Elapsed time.Duration
}

// Ok reports whether Got matched Expected.
func (r BenchResult) Ok() bool { return r.Got == r.Expected }

// NodesPerSec returns the throughput of a completed run, or 0 if it ran
// too fast to measure.
func (r BenchResult) NodesPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Got) / r.Elapsed.Seconds()
}

// RunBench runs every case in BenchSuite, using the parallel driver with
// workers goroutines for any case deeper than seedDepth and the
// sequential Perft otherwise, and returns one BenchResult per case in
// suite order.
func RunBench(workers int) ([]BenchResult, error) {
	results := make([]BenchResult, 0, len(BenchSuite))
	for _, tc := range BenchSuite {
		b, _, err := board.ParseFEN(tc.FEN)
		if err != nil {
			return nil, fmt.Errorf("perft: bench case %q: %w", tc.Name, err)
		}

		start := time.Now()
		var got int64
		if tc.Depth <= seedDepth {
			got = Perft(b, tc.Depth)
		} else {
			got, err = Parallel(context.Background(), b, tc.Depth, workers)
			if err != nil {
				return nil, fmt.Errorf("perft: bench case %q: %w", tc.Name, err)
			}
		}
		results = append(results, BenchResult{
			BenchCase: tc,
			Got:       got,
			Elapsed:   time.Since(start),
		})
	}
	return results, nil
}
