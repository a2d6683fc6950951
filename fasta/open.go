package fasta

import (
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var ErrRecordCount = errors.New("unexpected number of sequences")

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *readCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// Open opens path for reading, decompressing by suffix: .gz, .bz2 and .zst
// are understood, anything else is read as is. "-" is stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, errors.Wrapf(err, "gzip %s", path)
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case strings.HasSuffix(path, ".bz2"):
		return &readCloser{Reader: bzip2.NewReader(fh), closers: []io.Closer{fh}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, errors.Wrapf(err, "zstd %s", path)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{closerFunc(zr.Close), fh}}, nil
	default:
		return fh, nil
	}
}

func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := ReadAll(rc)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return recs, nil
}

// One reads a file that must hold exactly one record.
func One(path string) (Record, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	if len(recs) != 1 {
		return Record{}, errors.WithMessagef(ErrRecordCount, "%d sequences found in '%s', expected only 1", len(recs), path)
	}
	return recs[0], nil
}
