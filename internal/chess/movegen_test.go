package chess

import (
	"testing"
)

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	pos, _, _, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	square, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return square
}

// perft counts the leaf nodes of the legal move tree to a fixed depth.
// Expected counts for the positions below are well established in the chess
// programming literature, so a mismatch pins down a generation bug with high
// precision.
func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range p.AllLegalMoves(p.Turn) {
		next := p.Clone()
		next.ApplyMove(m)
		nodes += perft(next, depth-1)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		counts []int
	}{
		{
			name:   "starting position",
			fen:    StartFEN,
			counts: []int{20, 400, 8902, 197281},
		},
		{
			// Heavy on castling, pins and en passant.
			name:   "kiwipete",
			fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			counts: []int{48, 2039, 97862},
		},
		{
			// En passant captures that would expose the king.
			name:   "en passant pins",
			fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			counts: []int{14, 191, 2812, 43238},
		},
		{
			name:   "promotion storm",
			fen:    "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
			counts: []int{24, 496, 9483},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			for i, want := range tt.counts {
				depth := i + 1
				if got := perft(pos, depth); got != want {
					t.Errorf("perft depth %d = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		king      string
		kingSide  bool
		queenSide bool
	}{
		{
			name:      "both sides open",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			king:      "e1",
			kingSide:  true,
			queenSide: true,
		},
		{
			name:      "crossed square attacked",
			fen:       "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
			king:      "e1",
			kingSide:  false,
			queenSide: true,
		},
		{
			name:      "landing square attacked",
			fen:       "r3k2r/8/8/8/6r1/8/8/R3K2R w KQkq - 0 1",
			king:      "e1",
			kingSide:  false,
			queenSide: true,
		},
		{
			// Only the king's path matters: an attack on b1 does not
			// block queenside castling.
			name:      "rook path attack irrelevant",
			fen:       "r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1",
			king:      "e1",
			kingSide:  true,
			queenSide: true,
		},
		{
			name:      "king in check",
			fen:       "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
			king:      "e1",
			kingSide:  false,
			queenSide: false,
		},
		{
			name:      "squares occupied",
			fen:       "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1",
			king:      "e1",
			kingSide:  false,
			queenSide: false,
		},
		{
			name:      "rights missing",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			king:      "e1",
			kingSide:  false,
			queenSide: false,
		},
		{
			name:      "black both sides",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			king:      "e8",
			kingSide:  true,
			queenSide: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			var kingSide, queenSide bool
			for _, m := range pos.LegalMoves(sq(t, tt.king)) {
				switch m.Castle {
				case CastleKingSide:
					kingSide = true
				case CastleQueenSide:
					queenSide = true
				}
			}
			if kingSide != tt.kingSide {
				t.Errorf("kingside castle offered = %v, want %v", kingSide, tt.kingSide)
			}
			if queenSide != tt.queenSide {
				t.Errorf("queenside castle offered = %v, want %v", queenSide, tt.queenSide)
			}
		})
	}
}

func TestPawnAttackDirections(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/4p3/4P3/8/8/4K3 w - - 0 1")

	// Black pawn on e5 attacks d4 and f4, never d6 or f6.
	for _, s := range []string{"d4", "f4"} {
		if !pos.IsSquareAttacked(sq(t, s), Black) {
			t.Errorf("%s should be attacked by the black pawn on e5", s)
		}
	}
	for _, s := range []string{"d6", "f6"} {
		if pos.IsSquareAttacked(sq(t, s), Black) {
			t.Errorf("%s should not be attacked by the black pawn on e5", s)
		}
	}

	// White pawn on e4 attacks d5 and f5, never d3 or f3.
	for _, s := range []string{"d5", "f5"} {
		if !pos.IsSquareAttacked(sq(t, s), White) {
			t.Errorf("%s should be attacked by the white pawn on e4", s)
		}
	}
	for _, s := range []string{"d3", "f3"} {
		if pos.IsSquareAttacked(sq(t, s), White) {
			t.Errorf("%s should not be attacked by the white pawn on e4", s)
		}
	}
}

func TestPinnedPieceHasNoMoves(t *testing.T) {
	pos := mustPosition(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	if moves := pos.LegalMoves(sq(t, "e2")); len(moves) != 0 {
		t.Errorf("pinned knight has %d moves, want 0: %v", len(moves), moves)
	}
}

func TestPawnPushes(t *testing.T) {
	t.Run("double push from the start rank", func(t *testing.T) {
		pos := mustPosition(t, StartFEN)
		moves := pos.LegalMoves(sq(t, "e2"))
		if len(moves) != 2 {
			t.Fatalf("e2 pawn has %d moves, want 2: %v", len(moves), moves)
		}
		var sawDouble bool
		for _, m := range moves {
			if m.To == sq(t, "e4") {
				sawDouble = true
				if !m.IsDoublePush {
					t.Error("e2e4 not flagged as a double push")
				}
			}
		}
		if !sawDouble {
			t.Error("double push e2e4 not generated")
		}
	})
	t.Run("double push blocked on the far square", func(t *testing.T) {
		pos := mustPosition(t, "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1")
		moves := pos.LegalMoves(sq(t, "e2"))
		if len(moves) != 1 || moves[0].To != sq(t, "e3") {
			t.Fatalf("want the single push e2e3 only, got %v", moves)
		}
	})
	t.Run("push blocked", func(t *testing.T) {
		pos := mustPosition(t, "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1")
		if moves := pos.LegalMoves(sq(t, "e2")); len(moves) != 0 {
			t.Fatalf("blocked pawn has moves: %v", moves)
		}
	})
}

func TestEnPassantGeneration(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	var ep *Move
	for _, m := range pos.LegalMoves(sq(t, "e5")) {
		if m.IsEnPassant {
			m := m
			ep = &m
		}
	}
	if ep == nil {
		t.Fatal("en passant capture not generated")
	}
	if want := sq(t, "d6"); ep.To != want {
		t.Errorf("en passant lands on %v, want %v", ep.To, want)
	}
	if ep.Capture != Pawn {
		t.Errorf("en passant capture = %q, want %q", ep.Capture, Pawn)
	}
}

func TestEnPassantOnlyForSideToMove(t *testing.T) {
	// The en passant target arose from Black's own double push; Black's
	// pawns must not treat it as capturable.
	pos := mustPosition(t, "4k3/2p1p3/8/3pP3/8/8/8/4K3 w - d6 0 1")
	for _, m := range pos.AllLegalMoves(Black) {
		if m.IsEnPassant {
			t.Errorf("en passant move generated for the side not to move: %+v", m)
		}
	}
}

func TestPromotionExpansion(t *testing.T) {
	pos := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := pos.LegalMoves(sq(t, "a7"))
	if len(moves) != 4 {
		t.Fatalf("promotion push yields %d moves, want 4: %v", len(moves), moves)
	}
	want := []PieceType{Queen, Rook, Bishop, Knight}
	for i, m := range moves {
		if m.Promotion != want[i] {
			t.Errorf("promotion %d = %q, want %q", i, m.Promotion, want[i])
		}
		if m.To != sq(t, "a8") {
			t.Errorf("promotion %d lands on %v, want a8", i, m.To)
		}
	}
}

func TestLegalMovesOwnership(t *testing.T) {
	pos := mustPosition(t, StartFEN)
	if moves := pos.LegalMoves(sq(t, "e7")); moves != nil {
		t.Errorf("opponent piece yields moves: %v", moves)
	}
	if moves := pos.LegalMoves(sq(t, "e4")); moves != nil {
		t.Errorf("empty square yields moves: %v", moves)
	}
	if moves := pos.LegalMoves(Square{X: -1, Y: 9}); moves != nil {
		t.Errorf("out of bounds square yields moves: %v", moves)
	}
}
