package board

// MakeMove returns the position after applying m to b, rotated so that
// the side now to move sits at the bottom of the returned board. There
// is no unmake path and no error return: Board values are immutable
// snapshots, and callers must only ever pass a move GenerateMoves(b)
// actually produced.
//
// MakeMove is not used for an ordinary single or double pawn push —
// those go through the batched MakePawnPush fast path instead — so it
// never needs to set an en passant ghost bit itself.
func MakeMove(b Board, m Move) Board {
	init, dest := m.Init(), m.Dest()
	result := m.Result()

	clear := SquareBB(init) | SquareBB(dest)

	if result == Pawn {
		// An en passant capture lands on the (empty) EP square; the
		// captured pawn sits one rank behind it and must be cleared too.
		clear |= (b.EnPassant() & clear).South()
	}
	if result == King {
		// Moving the king forfeits both castling rights at once: collapse
		// every Castle-tagged rook on our home rank back to a plain Rook.
		b.X &^= b.Extract(Castle) & Rank1
	}

	if m.IsCastle() {
		var rookOrigin Square
		if dest < init {
			rookOrigin = A1
		} else {
			rookOrigin = H1
		}
		clear |= SquareBB(rookOrigin)
		rookDest := Square((int(init) + int(dest)) / 2)
		b.X, b.Y, b.Z = setPiece(b.X, b.Y, b.Z, rookDest, Rook)
	}

	b.X &^= clear
	b.Y &^= clear
	b.Z &^= clear
	b.X, b.Y, b.Z = setPiece(b.X, b.Y, b.Z, dest, result)

	// Whatever opponent pieces remain: everything still occupied that
	// isn't ours and wasn't touched by this move (captures are implicit
	// in clear, so a captured piece never shows up here).
	enemy := b.Occupied() &^ (b.Our | clear)

	return Board{
		X:   b.X.Rotate(),
		Y:   b.Y.Rotate(),
		Z:   b.Z.Rotate(),
		Our: enemy.Rotate(),
	}
}

// MakePawnPush applies a non-promoting single or double pawn push whose
// destination is dest, as batched into MoveBuffer.PawnPushes by
// generatePawnMoves. It recovers the origin square itself (south of
// dest for a single push, two ranks south for a double push) and, for a
// double push, plants the en passant ghost bit in the square the pawn
// skipped over.
func MakePawnPush(b Board, dest Square) Board {
	destBB := SquareBB(dest)
	occ := b.Occupied()
	initBB := destBB.South()

	var epGhost Bitboard
	if initBB&occ == 0 {
		// The square immediately behind dest is empty too: this is a
		// double push, and that empty square is the new EP target.
		epGhost = initBB
		initBB = initBB.South()
	}

	toggle := destBB | initBB
	b.X ^= toggle

	enemy := b.Occupied() &^ (b.Our | toggle)

	return Board{
		X:   b.X.Rotate(),
		Y:   b.Y.Rotate(),
		Z:   b.Z.Rotate(),
		Our: (enemy | epGhost).Rotate(),
	}
}
