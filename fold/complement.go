package fold

import "strings"

var dnaComplement = map[byte]byte{
	'A': 'T', 'T': 'A', 'U': 'A', 'G': 'C', 'C': 'G',
	'R': 'Y', 'Y': 'R', 'K': 'M', 'M': 'K', 'S': 'S', 'W': 'W',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
}

// ReverseComplement returns the reverse complement of seq using IUPAC
// ambiguity codes. Case is kept. A sequence with U and no T is treated as
// RNA, so A pairs with U. Characters outside the alphabet, such as gaps,
// are copied unchanged.
func ReverseComplement(seq string) string {
	rna := strings.ContainsAny(seq, "Uu") && !strings.ContainsAny(seq, "Tt")
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complement(seq[i], rna)
	}
	return string(out)
}

func complement(b byte, rna bool) byte {
	lower := b >= 'a' && b <= 'z'
	up := b
	if lower {
		up -= 'a' - 'A'
	}
	c, ok := dnaComplement[up]
	if !ok {
		return b
	}
	if rna && c == 'T' {
		c = 'U'
	}
	if lower {
		c += 'a' - 'A'
	}
	return c
}
