package playfair

import "github.com/katalvlaran/playfair/keysquare"

// Split segments cleaned text into digraphs for encryption.
//
// The next letter is paired with the following one unless that letter is
// missing or equal to it; then filler completes the pair and the repeated
// letter opens the next digraph. The result always covers every input letter
// in order.
//
// Complexity: O(n).
func Split(cleaned string, filler byte) []Digraph {
	out := make([]Digraph, 0, len(cleaned)/2+1)
	for i := 0; i < len(cleaned); {
		a := cleaned[i]
		if i+1 < len(cleaned) && cleaned[i+1] != a {
			out = append(out, Digraph{First: a, Second: cleaned[i+1]})
			i += 2
			continue
		}
		out = append(out, Digraph{First: a, Second: filler})
		i++
	}
	return out
}

// pairs segments even-length cleaned ciphertext two letters at a time.
func pairs(cleaned string) []Digraph {
	out := make([]Digraph, 0, len(cleaned)/2)
	for i := 0; i+1 < len(cleaned); i += 2 {
		out = append(out, Digraph{First: cleaned[i], Second: cleaned[i+1]})
	}
	return out
}

// substitute applies the row, column or rectangle rule to d.
// Both letters must be present in sq.
func substitute(sq *keysquare.Square, d Digraph, dir direction) Digraph {
	pa, _ := sq.Locate(d.First)
	pb, _ := sq.Locate(d.Second)

	switch {
	case pa.Row == pb.Row:
		if dir == forward {
			pa, pb = pa.Right(), pb.Right()
		} else {
			pa, pb = pa.Left(), pb.Left()
		}
	case pa.Col == pb.Col:
		if dir == forward {
			pa, pb = pa.Down(), pb.Down()
		} else {
			pa, pb = pa.Up(), pb.Up()
		}
	default:
		pa, pb = keysquare.Position{Row: pa.Row, Col: pb.Col}, keysquare.Position{Row: pb.Row, Col: pa.Col}
	}

	return Digraph{First: sq.AtPosition(pa), Second: sq.AtPosition(pb)}
}

// apply substitutes every digraph in order and concatenates the results.
func apply(sq *keysquare.Square, ds []Digraph, dir direction) string {
	out := make([]byte, 0, 2*len(ds))
	for _, d := range ds {
		s := substitute(sq, d, dir)
		out = append(out, s.First, s.Second)
	}
	return string(out)
}
