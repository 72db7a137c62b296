package chess

import "fmt"

// Square addresses a board cell. X runs from file a (0) to file h (7),
// Y from rank 8 (0) down to rank 1 (7), matching the rendered board.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.X >= 0 && s.X < 8 && s.Y >= 0 && s.Y < 8
}

// Notation returns the algebraic name of the square, such as "e4".
func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+s.X, 8-s.Y)
}

func (s Square) fileNotation() string {
	return fmt.Sprintf("%c", 'a'+s.X)
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '0')
	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return Square{X: file, Y: 8 - rank}, nil
}
