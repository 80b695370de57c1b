package keysquare

const (
	// Size is the side length of the key square.
	Size = 5
	// Cells is the number of letters held by the square.
	Cells = Size * Size
)

// Alphabet names the letter folded away to fit 26 letters into 25 cells.
// Every occurrence of Merged is replaced with Substitute, in keywords and text alike.
type Alphabet struct {
	Merged     byte
	Substitute byte
}

// DefaultAlphabet returns the classical convention: 'j' is written as 'i'.
func DefaultAlphabet() Alphabet {
	return Alphabet{Merged: 'j', Substitute: 'i'}
}

// Validate reports ErrInvalidAlphabet unless both letters are distinct
// lowercase ASCII letters.
func (a Alphabet) Validate() error {
	if !isLower(a.Merged) || !isLower(a.Substitute) || a.Merged == a.Substitute {
		return ErrInvalidAlphabet
	}
	return nil
}

// Letters returns the 25 letters of the alphabet in natural order.
func (a Alphabet) Letters() string {
	out := make([]byte, 0, Cells)
	for c := byte('a'); c <= 'z'; c++ {
		if c != a.Merged {
			out = append(out, c)
		}
	}
	return string(out)
}

// Position is a (row, column) coordinate inside the square; both lie in [0, Size).
type Position struct {
	Row, Col int
}

// Right is the cell to the right, wrapping the last column to the first.
func (p Position) Right() Position { return Position{Row: p.Row, Col: (p.Col + 1) % Size} }

// Left is the cell to the left, wrapping the first column to the last.
func (p Position) Left() Position { return Position{Row: p.Row, Col: (p.Col + Size - 1) % Size} }

// Down is the cell below, wrapping the last row to the first.
func (p Position) Down() Position { return Position{Row: (p.Row + 1) % Size, Col: p.Col} }

// Up is the cell above, wrapping the first row to the last.
func (p Position) Up() Position { return Position{Row: (p.Row + Size - 1) % Size, Col: p.Col} }

// index maps p to its row-major cell index: Row*Size + Col.
func (p Position) index() int {
	return p.Row*Size + p.Col
}

// position converts a row-major index back to a Position.
func position(idx int) Position {
	return Position{Row: idx / Size, Col: idx % Size}
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
