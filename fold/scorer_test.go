package fold_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"strider/fold"
)

func TestGCScorer(t *testing.T) {
	tests := []struct {
		window string
		want   float64
	}{
		{"GGCC", 1},
		{"AtGc", 0.5},
		{"ASWT", 0.25},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := fold.GCScorer{}.Score(context.Background(), tt.window)
		if err != nil {
			t.Fatal(err)
		}
		if got.Value != tt.want {
			t.Errorf("GC(%q) = %v, want %v", tt.window, got.Value, tt.want)
		}
	}
}

func TestParseFoldOutput(t *testing.T) {
	tests := []struct {
		name      string
		out       string
		structure string
		energy    float64
	}{
		{"RNAfold", "GGGAAACCC\n(((...))).  ( -1.20)\n", "(((...))).", -1.2},
		{"RNAcofold", "GGG&CCC\n(((&)))   (-10.50)\n", "(((&)))", -10.5},
		{"Unfolded", "AAAA\n....  (  0.00)", "....", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := fold.ParseFoldOutput([]byte(tt.out))
			if err != nil {
				t.Fatal(err)
			}
			if res.Structure != tt.structure || res.Value != tt.energy {
				t.Errorf("got %+v, want %s %v", res, tt.structure, tt.energy)
			}
		})
	}

	for _, bad := range []string{"", "....", ".... (abc)", ".... ) -1 ("} {
		if _, err := fold.ParseFoldOutput([]byte(bad)); !errors.Is(err, fold.ErrUnparsable) {
			t.Errorf("ParseFoldOutput(%q) error = %v", bad, err)
		}
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fakefold")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandScorer(t *testing.T) {
	bin := writeScript(t, `[ "$1" = "--noPS" ] && [ "$2" = "-T" ] && [ "$3" = "25" ] || { echo "bad args: $*" >&2; exit 2; }
read seq
echo "$seq"
echo ".... ( -${#seq}.00)"
`)
	scorer := fold.FoldCommand(bin, 25)
	res, err := scorer.Score(context.Background(), "ACGUA")
	if err != nil {
		t.Fatal(err)
	}
	if res.Structure != "...." || res.Value != -5 {
		t.Errorf("got %+v", res)
	}
}

func TestCommandScorer_Failure(t *testing.T) {
	bin := writeScript(t, "echo 'segment too long' >&2\nexit 1\n")
	_, err := fold.FoldCommand(bin, 37).Score(context.Background(), "ACGU")
	if err == nil || !strings.Contains(err.Error(), "segment too long") {
		t.Errorf("expected stderr in error, got %v", err)
	}
}

func TestCommandScorer_MissingBinary(t *testing.T) {
	_, err := fold.FoldCommand(filepath.Join(t.TempDir(), "missing"), 37).Score(context.Background(), "ACGU")
	if err == nil {
		t.Error("expected an error for a missing binary")
	}
}

func TestCommandDefaults(t *testing.T) {
	if got := fold.FoldCommand("", 37).Name(); got != fold.DefaultFoldBinary {
		t.Errorf("FoldCommand default = %q", got)
	}
	if got := fold.CofoldCommand("", 37).Name(); got != fold.DefaultCofoldBinary {
		t.Errorf("CofoldCommand default = %q", got)
	}
}

func TestScriptScorer(t *testing.T) {
	tests := []struct {
		expr   string
		window string
		want   float64
	}{
		{"len(window)", "ACGT", 4},
		{`float(import("text").count(window, "G")) / len(window)`, "GGAA", 0.5},
		{`window == "AA" ? 1.5 : -1`, "AA", 1.5},
	}
	for _, tt := range tests {
		s, err := fold.NewScriptScorer(tt.expr)
		if err != nil {
			t.Fatalf("NewScriptScorer(%q): %v", tt.expr, err)
		}
		res, err := s.Score(context.Background(), tt.window)
		if err != nil {
			t.Fatalf("%q: %v", tt.expr, err)
		}
		if res.Value != tt.want {
			t.Errorf("%q on %q = %v, want %v", tt.expr, tt.window, res.Value, tt.want)
		}
	}
}

func TestScriptScorer_Errors(t *testing.T) {
	if _, err := fold.NewScriptScorer("1 +"); err == nil {
		t.Error("expected a compile error")
	}
	s, err := fold.NewScriptScorer(`"abc"`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Score(context.Background(), "ACGT"); err == nil {
		t.Error("expected an error for a non-numeric result")
	}
}
