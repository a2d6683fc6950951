package fold

import (
	"context"
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const scriptResult = "__res__"

// ScriptScorer evaluates a tengo expression per window. The window is bound
// to the variable `window` and the standard tengo modules are importable:
//
//	float(import("text").count(window, "G")) / len(window)
//
// The expression must produce something cast can turn into a float64.
type ScriptScorer struct {
	expr string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

func NewScriptScorer(expr string) (*ScriptScorer, error) {
	script := tengo.NewScript([]byte(fmt.Sprintf("%s := (%s)", scriptResult, expr)))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("window", ""); err != nil {
		return nil, errors.Wrap(err, "bind window")
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", expr)
	}
	return &ScriptScorer{expr: expr, compiled: compiled}, nil
}

func (s *ScriptScorer) Name() string { return s.expr }

func (s *ScriptScorer) Score(ctx context.Context, window string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("window", window); err != nil {
		return Result{}, errors.Wrap(err, "set window")
	}
	if err := s.compiled.RunContext(ctx); err != nil {
		return Result{}, errors.Wrapf(err, "run %q", s.expr)
	}
	v, err := cast.ToFloat64E(s.compiled.Get(scriptResult).Value())
	if err != nil {
		return Result{}, errors.Wrapf(err, "result of %q", s.expr)
	}
	return Result{Value: v}, nil
}
