// Package bed reads the first columns of BED files into intervals.
package bed

import (
	"cmp"
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"strider/intervals"
)

var ErrMalformed = errors.New("malformed bed line")

// Feature is one BED line. Span is half-open, zero-based.
type Feature struct {
	Chrom string
	Span  intervals.Interval[int]
	Name  string
}

// Read parses chrom, start, end and the optional name column. Comment, track
// and browser lines are skipped. Columns are tab separated.
func Read(r io.Reader) ([]Feature, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var out []Feature
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read bed")
		}
		line, _ := cr.FieldPos(0)
		if strings.HasPrefix(rec[0], "track") || strings.HasPrefix(rec[0], "browser") {
			continue
		}
		if len(rec) < 3 {
			return nil, errors.WithMessagef(ErrMalformed, "line %d: %d columns", line, len(rec))
		}
		start, err := cast.ToIntE(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, errors.WithMessagef(ErrMalformed, "line %d: start %q", line, rec[1])
		}
		end, err := cast.ToIntE(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, errors.WithMessagef(ErrMalformed, "line %d: end %q", line, rec[2])
		}
		f := Feature{Chrom: rec[0], Span: intervals.New(start, end)}
		if err := f.Span.Validate(); err != nil {
			return nil, errors.WithMessagef(ErrMalformed, "line %d: %v", line, err)
		}
		if len(rec) > 3 {
			f.Name = rec[3]
		}
		out = append(out, f)
	}
}

// ByChrom splits features per chromosome, keeping the order in which
// chromosomes first appear.
func ByChrom(features []Feature) (chroms []string, spans map[string][]intervals.Interval[int]) {
	spans = make(map[string][]intervals.Interval[int])
	for _, f := range features {
		if _, ok := spans[f.Chrom]; !ok {
			chroms = append(chroms, f.Chrom)
		}
		spans[f.Chrom] = append(spans[f.Chrom], f.Span)
	}
	return chroms, spans
}

// Concat joins feature lists, optionally sorting by chromosome then start.
func Concat(sorted bool, lists ...[]Feature) []Feature {
	out := slices.Concat(lists...)
	if sorted {
		slices.SortStableFunc(out, func(a, b Feature) int {
			if c := cmp.Compare(a.Chrom, b.Chrom); c != 0 {
				return c
			}
			return cmp.Compare(a.Span.Start, b.Span.Start)
		})
	}
	return out
}
