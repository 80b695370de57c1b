package playfair

import "unicode"

// StripFiller removes padding from decrypted text produced with filler.
//
// A filler letter is dropped when it sits in the second slot of a digraph
// (odd index) and either separates two equal letters or ends the text.
// Genuine filler letters in those places are removed as well; Playfair
// cannot distinguish them.
//
// A filler that is not an ASCII letter leaves plain unchanged.
func StripFiller(plain string, filler rune) string {
	f := unicode.ToLower(filler)
	if f < 'a' || f > 'z' {
		return plain
	}
	return stripFiller(plain, byte(f))
}

func stripFiller(plain string, f byte) string {
	out := make([]byte, 0, len(plain))
	last := len(plain) - 1
	for i := 0; i < len(plain); i++ {
		if i%2 == 1 && plain[i] == f {
			if i == last || plain[i-1] == plain[i+1] {
				continue
			}
		}
		out = append(out, plain[i])
	}
	return string(out)
}
