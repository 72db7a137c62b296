package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position plus the half-move clock and
// full-move number. The first four fields are required, the clocks optional
// (defaulting to 0 and 1). Malformed input is rejected rather than producing
// an inconsistent position.
func ParseFEN(fen string) (*Position, int, int, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, 0, 0, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	p := &Position{}
	if err := parsePlacement(p, parts[0]); err != nil {
		return nil, 0, 0, err
	}

	switch parts[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return nil, 0, 0, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastling(p, parts[2]); err != nil {
		return nil, 0, 0, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		p.EnPassant = &sq
	}

	halfMove := 0
	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, 0, 0, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		halfMove = n
	}
	fullMove := 1
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, 0, 0, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		fullMove = n
	}

	return p, halfMove, fullMove, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}
	whiteKings, blackKings := 0, 0
	for y, rankStr := range ranks {
		x := 0
		for _, c := range rankStr {
			if x > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-y)
			}
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			piece, ok := pieceFromFEN(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			p.Board[y][x] = piece
			if piece.Type == King {
				if piece.Color == White {
					p.whiteKing = Square{X: x, Y: y}
					whiteKings++
				} else {
					p.blackKing = Square{X: x, Y: y}
					blackKings++
				}
			}
			x++
		}
		if x != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", 8-y, x)
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("invalid piece placement: need exactly one king per side")
	}
	return nil
}

func parseCastling(p *Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			p.Castling.WhiteKingSide = true
		case 'Q':
			p.Castling.WhiteQueenSide = true
		case 'k':
			p.Castling.BlackKingSide = true
		case 'q':
			p.Castling.BlackQueenSide = true
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}
	return nil
}

func pieceFromFEN(c rune) (*Piece, bool) {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	var pt PieceType
	switch c {
	case 'k':
		pt = King
	case 'q':
		pt = Queen
	case 'r':
		pt = Rook
	case 'b':
		pt = Bishop
	case 'n':
		pt = Knight
	case 'p':
		pt = Pawn
	default:
		return nil, false
	}
	return &Piece{Type: pt, Color: color}, true
}

func fenChar(piece *Piece) byte {
	var c byte
	switch piece.Type {
	case King:
		c = 'k'
	case Queen:
		c = 'q'
	case Rook:
		c = 'r'
	case Bishop:
		c = 'b'
	case Knight:
		c = 'n'
	case Pawn:
		c = 'p'
	}
	if piece.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// NewGameFromFEN builds a game from a serialized position. Terminal flags
// are recomputed immediately, so loading a mated or stalemated position
// yields a finished game.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, halfMove, fullMove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		pos:            pos,
		halfMoveClock:  halfMove,
		fullMoveNumber: fullMove,
		moveHistory:    make([]MoveRecord, 0),
		capturedWhite:  make([]PieceType, 0),
		capturedBlack:  make([]PieceType, 0),
	}
	g.recomputeStatus()
	return g, nil
}

// FEN serializes the game losslessly: board layout, active color, castling
// rights, en passant target, half-move clock and full-move number.
func (g *Game) FEN() string {
	return formatFEN(g.pos, g.halfMoveClock, g.fullMoveNumber)
}

func formatFEN(p *Position, halfMove, fullMove int) string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			piece := p.Board[y][x]
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenChar(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := ""
	if p.Castling.WhiteKingSide {
		rights += "K"
	}
	if p.Castling.WhiteQueenSide {
		rights += "Q"
	}
	if p.Castling.BlackKingSide {
		rights += "k"
	}
	if p.Castling.BlackQueenSide {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if p.EnPassant != nil {
		sb.WriteString(p.EnPassant.Notation())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(halfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(fullMove))

	return sb.String()
}
