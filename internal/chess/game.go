package chess

// Game owns the authoritative position of one game plus everything around
// it: clocks, history, captured pieces, terminal flags and the UI selection.
// It is a single-writer structure: only MakeMove (and SelectSquare when it
// applies a move) mutates it, and it carries no locking of its own. Callers
// that share a Game across goroutines wrap it.
type Game struct {
	pos *Position

	halfMoveClock  int
	fullMoveNumber int
	moveHistory    []MoveRecord
	capturedWhite  []PieceType
	capturedBlack  []PieceType
	lastMove       *Move

	isCheck     bool
	isCheckmate bool
	isStalemate bool
	isDraw      bool
	gameOver    bool
	winner      Color

	selected      *Square
	selectedMoves []Move
}

// GameState is a self-contained snapshot of a Game, shaped for JSON
// delivery to clients. CapturedWhite lists the white pieces taken so far, in
// capture order; CapturedBlack likewise for black pieces.
type GameState struct {
	Board           [8][8]*Piece   `json:"board"`
	Turn            Color          `json:"turn"`
	Castling        CastlingRights `json:"castlingRights"`
	EnPassantTarget *Square        `json:"enPassantTarget"`
	HalfMoveClock   int            `json:"halfMoveClock"`
	FullMoveNumber  int            `json:"fullMoveNumber"`
	MoveHistory     []MoveRecord   `json:"moveHistory"`
	CapturedWhite   []PieceType    `json:"capturedWhite"`
	CapturedBlack   []PieceType    `json:"capturedBlack"`
	LastMove        *Move          `json:"lastMove"`
	SelectedSquare  *Square        `json:"selectedSquare"`
	LegalMoves      []Square       `json:"legalMoves"`
	IsCheck         bool           `json:"isCheck"`
	IsCheckmate     bool           `json:"isCheckmate"`
	IsStalemate     bool           `json:"isStalemate"`
	IsDraw          bool           `json:"isDraw"`
	GameOver        bool           `json:"gameOver"`
	Winner          Color          `json:"winner,omitempty"`
	FEN             string         `json:"fen"`
}

// NewGame returns a game at the standard starting position.
func NewGame() *Game {
	return &Game{
		pos:            NewPosition(),
		fullMoveNumber: 1,
		moveHistory:    make([]MoveRecord, 0),
		capturedWhite:  make([]PieceType, 0),
		capturedBlack:  make([]PieceType, 0),
	}
}

// Position returns the authoritative position. Callers must treat it as
// read-only; search code clones it before applying anything.
func (g *Game) Position() *Position { return g.pos }

// Turn returns the side to move.
func (g *Game) Turn() Color { return g.pos.Turn }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Winner returns the winning side, or "" while the game runs or on a draw.
func (g *Game) Winner() Color { return g.winner }

// InCheck reports whether the given side's king is attacked.
func (g *Game) InCheck(c Color) bool { return g.pos.InCheck(c) }

// IsSquareAttacked reports whether sq is attacked by the given side.
func (g *Game) IsSquareAttacked(sq Square, by Color) bool {
	return g.pos.IsSquareAttacked(sq, by)
}

// FindKing returns the square of the given side's king.
func (g *Game) FindKing(c Color) Square { return g.pos.King(c) }

// LegalMoves returns the legal moves for the piece on sq; empty for an
// empty, opponent or out-of-bounds square.
func (g *Game) LegalMoves(sq Square) []Move { return g.pos.LegalMoves(sq) }

// AllLegalMoves returns every legal move for the given side.
func (g *Game) AllLegalMoves(c Color) []Move { return g.pos.AllLegalMoves(c) }

// MoveHistory returns the applied moves in order.
func (g *Game) MoveHistory() []MoveRecord {
	return append([]MoveRecord(nil), g.moveHistory...)
}

// FindLegalMove resolves a from/to pair (as supplied over the wire) against
// the legal move set. For promotions the four variants share endpoints;
// promotion selects among them and defaults to queen when empty.
func (g *Game) FindLegalMove(from, to Square, promotion PieceType) (Move, bool) {
	want := promotion
	if want == "" {
		want = Queen
	}
	for _, m := range g.pos.LegalMoves(from) {
		if m.To != to {
			continue
		}
		if m.Promotion != "" && m.Promotion != want {
			continue
		}
		return m, true
	}
	return Move{}, false
}

// MakeMove applies a legal move and returns the events it produced, in
// order. All bookkeeping is synchronous: when MakeMove returns, the clocks,
// history, captured lists and terminal flags reflect the new position. The
// move must come from this game's legal move generator; it is not
// re-validated. Calling MakeMove on a finished game is a no-op.
func (g *Game) MakeMove(m Move) []Event {
	if g.gameOver {
		return nil
	}
	piece := g.pos.Board[m.From.Y][m.From.X]
	mover := piece.Color
	notation := g.pos.moveNotation(m)

	var events []Event
	if m.Capture != "" {
		capSq := m.To
		if m.IsEnPassant {
			capSq = Square{X: m.To.X, Y: m.From.Y}
		}
		if mover == White {
			g.capturedBlack = append(g.capturedBlack, m.Capture)
		} else {
			g.capturedWhite = append(g.capturedWhite, m.Capture)
		}
		events = append(events, Event{Type: EventCapture, Color: mover.Opponent(), Piece: m.Capture, Square: &capSq})
	}
	if m.Promotion != "" {
		promoSq := m.To
		events = append(events, Event{Type: EventPromotion, Color: mover, Piece: m.Promotion, Square: &promoSq})
	}

	g.pos.ApplyMove(m)

	if piece.Type == Pawn || m.Capture != "" {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}
	if mover == Black {
		g.fullMoveNumber++
	}

	g.recomputeStatus()

	if g.isCheckmate {
		notation += "#"
	} else if g.isCheck {
		notation += "+"
	}
	g.moveHistory = append(g.moveHistory, MoveRecord{Notation: notation, From: m.From, To: m.To, Color: mover})
	applied := m
	g.lastMove = &applied
	g.selected = nil
	g.selectedMoves = nil

	next := g.pos.Turn
	events = append(events,
		Event{Type: EventMove, Color: mover, Move: &applied, Notation: notation},
		Event{Type: EventTurnChange, Color: next},
	)
	switch {
	case g.isCheckmate:
		events = append(events, Event{Type: EventCheckmate, Color: next})
	case g.isCheck:
		events = append(events, Event{Type: EventCheck, Color: next})
	case g.isStalemate:
		events = append(events, Event{Type: EventStalemate, Color: next})
	}
	if g.isDraw {
		events = append(events, Event{Type: EventDraw, Color: next, Reason: DrawReasonFiftyMove})
	}
	return events
}

// recomputeStatus derives the terminal flags for the side now to move.
// Checkmate takes precedence over the fifty-move rule.
func (g *Game) recomputeStatus() {
	side := g.pos.Turn
	g.isCheck = g.pos.InCheck(side)
	hasMoves := g.pos.HasLegalMoves(side)
	g.isCheckmate = g.isCheck && !hasMoves
	g.isStalemate = !g.isCheck && !hasMoves
	g.isDraw = !g.isCheckmate && g.halfMoveClock >= 100
	g.gameOver = g.isCheckmate || g.isStalemate || g.isDraw
	g.winner = ""
	if g.isCheckmate {
		g.winner = side.Opponent()
	}
}

// State returns a snapshot safe to hand to other goroutines and to
// serialize.
func (g *Game) State() GameState {
	st := GameState{
		Board:          g.pos.Board,
		Turn:           g.pos.Turn,
		Castling:       g.pos.Castling,
		HalfMoveClock:  g.halfMoveClock,
		FullMoveNumber: g.fullMoveNumber,
		MoveHistory:    append([]MoveRecord(nil), g.moveHistory...),
		CapturedWhite:  append([]PieceType(nil), g.capturedWhite...),
		CapturedBlack:  append([]PieceType(nil), g.capturedBlack...),
		LegalMoves:     g.selectedDestinations(),
		IsCheck:        g.isCheck,
		IsCheckmate:    g.isCheckmate,
		IsStalemate:    g.isStalemate,
		IsDraw:         g.isDraw,
		GameOver:       g.gameOver,
		Winner:         g.winner,
		FEN:            g.FEN(),
	}
	if g.pos.EnPassant != nil {
		ep := *g.pos.EnPassant
		st.EnPassantTarget = &ep
	}
	if g.lastMove != nil {
		lm := *g.lastMove
		st.LastMove = &lm
	}
	if g.selected != nil {
		sel := *g.selected
		st.SelectedSquare = &sel
	}
	return st
}

// selectedDestinations lists the destinations of the current selection with
// promotion variants collapsed to one square.
func (g *Game) selectedDestinations() []Square {
	dests := make([]Square, 0, len(g.selectedMoves))
	seen := make(map[Square]bool, len(g.selectedMoves))
	for _, m := range g.selectedMoves {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		dests = append(dests, m.To)
	}
	return dests
}
