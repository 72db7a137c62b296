package chess

import "testing"

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", StartFEN, "e2e4", "e4"},
		{"knight development", StartFEN, "g1f3", "Nf3"},
		{"pawn capture keeps the file", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"piece capture", "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", "e3d5", "Nxd5"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"promotion with check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q+"},
		{"capture promotion", "rn2k3/1P6/8/8/8/8/8/4K3 w - - 0 1", "b7a8q", "bxa8=Q"},
		{"en passant keeps the file", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6"},
		{"check suffix", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "a1a8", "Ra8+"},
		{"mate suffix", "k7/8/K7/8/8/8/8/7R w - - 0 1", "h1h8", "Rh8#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			mustMove(t, g, tt.move)
			history := g.MoveHistory()
			if got := history[len(history)-1].Notation; got != tt.want {
				t.Errorf("notation = %q, want %q", got, tt.want)
			}
		})
	}
}
