// Package report renders result rows as aligned text or CSV and logs the
// progress of long scans.
package report

import (
	"encoding/csv"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	FormatText = "text"
	FormatCSV  = "csv"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrRowWidth      = errors.New("row width does not match header")
)

// Table collects string rows under a fixed header.
type Table struct {
	header []string
	rows   [][]string
}

func NewTable(header ...string) *Table {
	return &Table{header: header}
}

func (t *Table) Header() []string {
	return t.header
}

func (t *Table) Rows() [][]string {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Append(row ...string) error {
	if len(row) != len(t.header) {
		return errors.WithMessagef(ErrRowWidth, "got %d cells, header has %d", len(row), len(t.header))
	}
	t.rows = append(t.rows, row)
	return nil
}

// AppendValues converts each value with cast before appending.
func (t *Table) AppendValues(values ...any) error {
	row := make([]string, len(values))
	for i, v := range values {
		s, err := cast.ToStringE(v)
		if err != nil {
			return errors.Wrapf(err, "column %q", t.column(i))
		}
		row[i] = s
	}
	return t.Append(row...)
}

func (t *Table) column(i int) string {
	if i < len(t.header) {
		return t.header[i]
	}
	return cast.ToString(i)
}

func (t *Table) RenderText(w io.Writer) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(t.rows)
	tw.Render()
	return nil
}

func (t *Table) RenderCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(t.rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}

// Render dispatches on format, one of FormatText or FormatCSV.
func (t *Table) Render(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return t.RenderText(w)
	case FormatCSV:
		return t.RenderCSV(w)
	default:
		return errors.WithMessage(ErrUnknownFormat, format)
	}
}
