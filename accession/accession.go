// Package accession pulls sequence identifiers out of FASTA description
// lines such as
//
//	mpn|NP_109689.1|MPN001|DNA polymerase III subunit beta [Mycoplasma pneumoniae M129]
package accession

import (
	"regexp"
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownKind = errors.New("unknown id kind")

var (
	refSeqRe = regexp.MustCompile(`(\s|\||^)([A-Z]{2}_[0-9.]+)(\s|\||$)`)
	fastaRe  = regexp.MustCompile(`^\s*?([^|]+?)(\s|\||$)`)
	// ids joined by '|' followed by a free text description with spaces
	taggedRe = regexp.MustCompile(`^([\w.|-]+)\|[\[\]\s\w.-]+\s+[\[\]\s\w.-]*$`)
	// ids only, optionally ending in '|'
	bareRe = regexp.MustCompile(`^([\w.|-]+[^|]+)(\||$)`)
	mpnRe  = regexp.MustCompile(`(MPN[\w.-]+)(\||$)`)
)

func submatch(re *regexp.Regexp, s string, group int) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[group], true
}

// RefSeq finds a RefSeq accession (two capitals, '_', digits and dots)
// delimited by whitespace, '|' or the ends of the line.
func RefSeq(desc string) (string, bool) {
	return submatch(refSeqRe, desc, 2)
}

// FastaID is the first token of the line, up to whitespace or '|'.
func FastaID(desc string) (string, bool) {
	return submatch(fastaRe, desc, 1)
}

// SeqID is the '|' separated run of ids before the free text description,
// or the whole line without a trailing '|' when there is no description.
func SeqID(desc string) (string, bool) {
	if id, ok := submatch(taggedRe, desc, 1); ok {
		return id, true
	}
	return submatch(bareRe, desc, 1)
}

// MPN finds a Mycoplasma pneumoniae locus tag such as MPN001 or MPN-175.
func MPN(desc string) (string, bool) {
	return submatch(mpnRe, desc, 1)
}

// Extractor is any of the functions above.
type Extractor func(desc string) (string, bool)

var extractors = map[string]Extractor{
	"refseq": RefSeq,
	"fasta":  FastaID,
	"seq":    SeqID,
	"mpn":    MPN,
}

// Lookup returns the extractor registered under name.
func Lookup(name string) (Extractor, error) {
	e, ok := extractors[name]
	if !ok {
		return nil, errors.WithMessagef(ErrUnknownKind, "%q, want one of %v", name, Kinds())
	}
	return e, nil
}

func Kinds() []string {
	kinds := make([]string, 0, len(extractors))
	for k := range extractors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
