package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"strider/config"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := config.New("")
	if err != nil {
		t.Fatal(err)
	}
	c, err := config.Load(v)
	if err != nil {
		t.Fatal(err)
	}
	want := config.Config{
		Window: 80, Step: 1, Workers: 1,
		Scorer: config.ScorerFold, Temperature: 37,
		RNAfold: "RNAfold", RNAcofold: "RNAcofold",
		Touching: true, Format: "text", LogLevel: "info",
		ProgressInterval: 5 * time.Second,
	}
	if c != want {
		t.Errorf("defaults = %+v, want %+v", c, want)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strider.yaml")
	body := "window: 40\nstep: 5\ntemperature: 25.5\nformat: csv\nprogress-interval: 1m\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STRIDER_STEP", "3")
	t.Setenv("STRIDER_LOG_LEVEL", "debug")

	v, err := config.New(path)
	if err != nil {
		t.Fatal(err)
	}
	c, err := config.Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.Window != 40 || c.Temperature != 25.5 || c.Format != "csv" || c.ProgressInterval != time.Minute {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.Step != 3 || c.LogLevel != "debug" {
		t.Errorf("env values not applied: %+v", c)
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := config.New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]any{
		"BadType":         {config.KeyWindow: "wide"},
		"ZeroWindow":      {config.KeyWindow: 0},
		"ZeroStep":        {config.KeyStep: 0},
		"UnknownScorer":   {config.KeyScorer: "mfold"},
		"ScriptWithout":   {config.KeyScorer: config.ScorerScript},
		"UnknownFormat":   {config.KeyFormat: "html"},
		"NegativeWorkers": {config.KeyWorkers: -2},
		"BadDuration":     {config.KeyProgressInterval: "soon"},
	}
	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := config.New("")
			if err != nil {
				t.Fatal(err)
			}
			for k, val := range overrides {
				v.Set(k, val)
			}
			if _, err := config.Load(v); !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRender(t *testing.T) {
	v, _ := config.New("")
	out := config.Render(v)
	for k := range config.Defaults() {
		if !strings.Contains(out, k) {
			t.Errorf("rendered config lacks %q:\n%s", k, out)
		}
	}
	if !strings.Contains(out, "RNAfold") {
		t.Errorf("rendered config lacks default values:\n%s", out)
	}
}
