package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// charToPiece maps a FEN piece letter (either case) to its PieceType
// and whether it belongs to White.
func charToPiece(c byte) (pt PieceType, white bool, ok bool) {
	white = c >= 'A' && c <= 'Z'
	switch c {
	case 'P', 'p':
		return Pawn, white, true
	case 'N', 'n':
		return Knight, white, true
	case 'B', 'b':
		return Bishop, white, true
	case 'R', 'r':
		return Rook, white, true
	case 'Q', 'q':
		return Queen, white, true
	case 'K', 'k':
		return King, white, true
	default:
		return Empty, false, false
	}
}

// ParseFEN parses a FEN position string into a Board described from the
// perspective of the side to move, plus a flag reporting whether that
// side is White. Half-move-clock and full-move-number fields, if
// present, are parsed only far enough to be skipped: the spec-level
// generator never consults them.
func ParseFEN(fen string) (Board, bool, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, false, fmt.Errorf("board: invalid FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	var x, y, z Bitboard
	var whiteOcc, blackOcc Bitboard

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, false, fmt.Errorf("board: invalid FEN %q: need 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range []byte(rankStr) {
			if file > 7 {
				return Board{}, false, fmt.Errorf("board: invalid FEN %q: too many squares in rank %d", fen, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, white, ok := charToPiece(c)
			if !ok {
				return Board{}, false, fmt.Errorf("board: invalid FEN %q: bad piece character %q", fen, c)
			}
			sq := NewSquare(file, rank)
			x, y, z = setPiece(x, y, z, sq, pt)
			if white {
				whiteOcc |= SquareBB(sq)
			} else {
				blackOcc |= SquareBB(sq)
			}
			file++
		}
		if file != 8 {
			return Board{}, false, fmt.Errorf("board: invalid FEN %q: rank %d has %d files, want 8", fen, rank+1, file)
		}
	}

	var whiteToMove bool
	switch fields[1] {
	case "w":
		whiteToMove = true
	case "b":
		whiteToMove = false
	default:
		return Board{}, false, fmt.Errorf("board: invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range []byte(fields[2]) {
			var sq Square
			switch c {
			case 'K':
				sq = H1
			case 'Q':
				sq = A1
			case 'k':
				sq = H8
			case 'q':
				sq = A8
			default:
				return Board{}, false, fmt.Errorf("board: invalid FEN %q: bad castling character %q", fen, c)
			}
			x, y, z = setPiece(x, y, z, sq, Castle)
		}
	}

	var epBB Bitboard
	if fields[3] != "-" {
		epSq, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, false, fmt.Errorf("board: invalid FEN %q: bad en passant square %q", fen, fields[3])
		}
		epBB = SquareBB(epSq)
	}

	// Half-move clock and full-move number (fields[4], fields[5]) are
	// deliberately ignored: the generator tracks neither.

	if whiteToMove {
		return Board{
			X:   x,
			Y:   y,
			Z:   z,
			Our: whiteOcc | epBB,
		}, true, nil
	}

	return Board{
		X:   x.Rotate(),
		Y:   y.Rotate(),
		Z:   z.Rotate(),
		Our: (blackOcc | epBB).Rotate(),
	}, false, nil
}
