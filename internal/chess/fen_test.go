package chess

import "testing"

func TestStartFEN(t *testing.T) {
	if got := NewGame().FEN(); got != StartFEN {
		t.Errorf("FEN() = %q, want %q", got, StartFEN)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 42 64",
	}
	for _, fen := range fens {
		g, err := NewGameFromFEN(fen)
		if err != nil {
			t.Errorf("NewGameFromFEN(%q): %v", fen, err)
			continue
		}
		if got := g.FEN(); got != fen {
			t.Errorf("round trip changed the FEN:\n in  %q\n out %q", fen, got)
		}
	}
}

func TestParseFENOptionalClocks(t *testing.T) {
	pos, halfMove, fullMove, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	if err != nil {
		t.Fatalf("four-field FEN rejected: %v", err)
	}
	if halfMove != 0 || fullMove != 1 {
		t.Errorf("default clocks = %d/%d, want 0/1", halfMove, fullMove)
	}
	if pos.Turn != White {
		t.Errorf("turn = %q, want %q", pos.Turn, White)
	}
}

func TestParseFENKingCaches(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if got := pos.King(White); got != sq(t, "e1") {
		t.Errorf("white king = %v, want e1", got)
	}
	if got := pos.King(Black); got != sq(t, "e8") {
		t.Errorf("black king = %v, want e8", got)
	}
}

func TestLoadFinishedGame(t *testing.T) {
	g := mustGame(t, "k6R/8/K7/8/8/8/8/8 b - - 0 1")
	if !g.GameOver() {
		t.Fatal("loaded mate not detected")
	}
	if g.Winner() != White {
		t.Errorf("winner = %q, want %q", g.Winner(), White)
	}
	state := g.State()
	if !state.IsCheck || !state.IsCheckmate {
		t.Errorf("state flags: check=%v checkmate=%v", state.IsCheck, state.IsCheckmate)
	}
}

func TestParseFENMalformed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w -"},
		{"seven ranks", "k6K/8/8/8/8/8/8 w - - 0 1"},
		{"overfull rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq zz 0 1"},
		{"negative half-move clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"zero full-move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"no white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1"},
		{"two black kings", "rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := ParseFEN(tt.fen); err == nil {
				t.Errorf("ParseFEN(%q) accepted malformed input", tt.fen)
			}
		})
	}
}
