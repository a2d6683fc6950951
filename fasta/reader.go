// Package fasta reads FASTA records from plain or compressed files.
package fasta

import (
	"io"
	"iter"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// Record is one FASTA entry. ID is the first word of the header line and
// Description the rest of it.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// Header rebuilds the header line without the leading '>'.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}

// Reader streams records from an io.Reader.
type Reader struct {
	sc  *seqio.Scanner
	rec Record
}

func NewReader(r io.Reader) *Reader {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	return &Reader{sc: seqio.NewScanner(fasta.NewReader(r, template))}
}

// Next advances to the next record. It returns false at the end of the input
// or on error; check Err afterwards.
func (r *Reader) Next() bool {
	if !r.sc.Next() {
		return false
	}
	s, ok := r.sc.Seq().(*linear.Seq)
	if !ok {
		return false
	}
	r.rec = Record{
		ID:          s.ID,
		Description: s.Desc,
		Seq:         string(alphabet.LettersToBytes(s.Seq)),
	}
	return true
}

func (r *Reader) Record() Record {
	return r.rec
}

func (r *Reader) Err() error {
	if err := r.sc.Error(); err != nil {
		return errors.Wrap(err, "read fasta")
	}
	return nil
}

// All yields every record, then a final read error if there was one.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for r.Next() {
			if !yield(r.rec, nil) {
				return
			}
		}
		if err := r.Err(); err != nil {
			yield(Record{}, err)
		}
	}
}

func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	for rec, err := range NewReader(r).All() {
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
