package keysquare

import "strings"

// Square is the 5×5 Playfair key square.
// cells holds the letters row-major; slots is the reverse index
// letter-'a' → cell index + 1, with 0 meaning "not in the square".
type Square struct {
	cells    [Cells]byte
	slots    [26]uint8
	alphabet Alphabet
}

// New builds the key square for keyword using DefaultAlphabet.
// Returns ErrInvalidKeyword when keyword has no letters after cleaning.
func New(keyword string) (*Square, error) {
	return NewWithAlphabet(keyword, DefaultAlphabet())
}

// NewWithAlphabet builds the key square for keyword with a custom merged letter.
//
// The cleaned keyword is walked first, placing every letter not seen before;
// the remaining letters of the alphabet follow in natural order.
//
// Returns ErrInvalidAlphabet for a malformed Alphabet,
// ErrInvalidKeyword when keyword has no letters after cleaning.
// Complexity: O(k + 26) time.
func NewWithAlphabet(keyword string, a Alphabet) (*Square, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	cleaned := Clean(keyword, a)
	if cleaned == "" {
		return nil, ErrInvalidKeyword
	}

	s := &Square{alphabet: a}
	n := 0
	place := func(c byte) {
		if n == Cells || s.slots[c-'a'] != 0 {
			return
		}
		s.cells[n] = c
		n++
		s.slots[c-'a'] = uint8(n)
	}
	for i := 0; i < len(cleaned); i++ {
		place(cleaned[i])
	}
	for c := byte('a'); c <= 'z'; c++ {
		if c != a.Merged {
			place(c)
		}
	}

	return s, nil
}

// Alphabet returns the alphabet the square was built with.
func (s *Square) Alphabet() Alphabet {
	return s.alphabet
}

// Clean cleans text with the square's alphabet.
func (s *Square) Clean(text string) string {
	return Clean(text, s.alphabet)
}

// InBounds reports whether (row, col) lies within the square.
func (s *Square) InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the letter at (row, col). It panics when the coordinate is out of bounds.
func (s *Square) At(row, col int) byte {
	if !s.InBounds(row, col) {
		panic("keysquare: position out of range")
	}
	return s.cells[Position{Row: row, Col: col}.index()]
}

// AtPosition returns the letter at p.
func (s *Square) AtPosition(p Position) byte {
	return s.At(p.Row, p.Col)
}

// Locate returns the position of letter. The boolean is false for anything
// outside the square: non-letters, uppercase, and the merged letter.
// Complexity: O(1).
func (s *Square) Locate(letter byte) (Position, bool) {
	if !isLower(letter) {
		return Position{}, false
	}
	slot := s.slots[letter-'a']
	if slot == 0 {
		return Position{}, false
	}
	return position(int(slot) - 1), true
}

// Contains reports whether letter occupies a cell of the square.
func (s *Square) Contains(letter byte) bool {
	_, ok := s.Locate(letter)
	return ok
}

// Letters returns all 25 letters in row-major order.
func (s *Square) Letters() string {
	return string(s.cells[:])
}

// Rows returns the five rows of the square, top to bottom.
func (s *Square) Rows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		rows[r] = string(s.cells[r*Size : (r+1)*Size])
	}
	return rows
}

// String renders the square as five lines of space-separated letters.
func (s *Square) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.At(r, c))
		}
	}
	return b.String()
}
