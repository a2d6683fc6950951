package fold

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	DefaultFoldBinary   = "RNAfold"
	DefaultCofoldBinary = "RNAcofold"
	DefaultTemperature  = 37.0
)

// CommandScorer runs a ViennaRNA style program once per window, feeding the
// window on stdin and reading the minimum free energy from stdout.
type CommandScorer struct {
	Binary      string
	Args        []string
	Temperature float64
}

func FoldCommand(binary string, temperature float64) *CommandScorer {
	if binary == "" {
		binary = DefaultFoldBinary
	}
	return &CommandScorer{Binary: binary, Temperature: temperature}
}

// CofoldCommand scores two strands joined with '&'.
func CofoldCommand(binary string, temperature float64) *CommandScorer {
	if binary == "" {
		binary = DefaultCofoldBinary
	}
	return &CommandScorer{Binary: binary, Temperature: temperature}
}

func (c *CommandScorer) Name() string { return c.Binary }

func (c *CommandScorer) args() []string {
	args := []string{"--noPS", "-T", strconv.FormatFloat(c.Temperature, 'f', -1, 64)}
	return append(args, c.Args...)
}

func (c *CommandScorer) Score(ctx context.Context, window string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Binary, c.args()...)
	cmd.Stdin = strings.NewReader(window + "\n")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return Result{}, errors.Wrapf(err, "%s: %s", c.Binary, msg)
		}
		return Result{}, errors.Wrap(err, c.Binary)
	}
	return ParseFoldOutput(stdout.Bytes())
}

// ParseFoldOutput reads the structure line RNAfold and RNAcofold print last:
//
//	((((....))))  ( -3.40)
func ParseFoldOutput(out []byte) (Result, error) {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	fields := strings.Fields(last)
	if len(fields) < 2 {
		return Result{}, errors.WithMessagef(ErrUnparsable, "%q", last)
	}

	open := strings.LastIndexByte(last, '(')
	end := strings.LastIndexByte(last, ')')
	if open < 0 || end < open {
		return Result{}, errors.WithMessagef(ErrUnparsable, "no energy in %q", last)
	}
	energy, err := cast.ToFloat64E(strings.TrimSpace(last[open+1 : end]))
	if err != nil {
		return Result{}, errors.WithMessagef(ErrUnparsable, "energy in %q: %v", last, err)
	}
	return Result{Structure: fields[0], Value: energy}, nil
}
