package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"strider/report"
)

func TestTable_Render(t *testing.T) {
	tbl := report.NewTable("center", "energy")
	if err := tbl.AppendValues(39.5, -12.3); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Append("40.5", "-11"); err != nil {
		t.Fatal(err)
	}

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Render(&buf, report.FormatText); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"center", "energy", "39.5", "-12.3", "40.5"} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tbl.Render(&buf, report.FormatCSV); err != nil {
			t.Fatal(err)
		}
		want := "center,energy\n39.5,-12.3\n40.5,-11\n"
		if buf.String() != want {
			t.Errorf("csv output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if err := tbl.Render(&bytes.Buffer{}, "html"); !errors.Is(err, report.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestTable_AppendWidthMismatch(t *testing.T) {
	tbl := report.NewTable("a", "b")
	if err := tbl.Append("1"); !errors.Is(err, report.ErrRowWidth) {
		t.Errorf("expected ErrRowWidth, got %v", err)
	}
	if err := tbl.AppendValues(1, 2, 3); !errors.Is(err, report.ErrRowWidth) {
		t.Errorf("expected ErrRowWidth, got %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("rejected rows were stored: %v", tbl.Rows())
	}
}

func TestTable_AppendValuesUncastable(t *testing.T) {
	tbl := report.NewTable("a")
	if err := tbl.AppendValues(struct{}{}); err == nil {
		t.Error("expected an error for a value cast cannot convert")
	}
}
