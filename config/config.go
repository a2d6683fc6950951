// Package config loads strider settings from an optional config file,
// STRIDER_ environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"strider/report"
)

const (
	KeyWindow           = "window"
	KeyStep             = "step"
	KeyWorkers          = "workers"
	KeyScorer           = "scorer"
	KeyScript           = "script"
	KeyTemperature      = "temperature"
	KeyRNAfold          = "rnafold"
	KeyRNAcofold        = "rnacofold"
	KeyTouching         = "touching"
	KeyFormat           = "format"
	KeyLogLevel         = "log-level"
	KeyProgressInterval = "progress-interval"

	EnvPrefix = "strider"
)

const (
	ScorerFold   = "rnafold"
	ScorerGC     = "gc"
	ScorerScript = "script"
)

var ErrInvalidConfig = errors.New("invalid config")

// Defaults holds the value of every key before any file, env or flag.
func Defaults() map[string]any {
	return map[string]any{
		KeyWindow:           80,
		KeyStep:             1,
		KeyWorkers:          1,
		KeyScorer:           ScorerFold,
		KeyScript:           "",
		KeyTemperature:      37.0,
		KeyRNAfold:          "RNAfold",
		KeyRNAcofold:        "RNAcofold",
		KeyTouching:         true,
		KeyFormat:           report.FormatText,
		KeyLogLevel:         "info",
		KeyProgressInterval: 5 * time.Second,
	}
}

type Config struct {
	Window           int
	Step             int
	Workers          int
	Scorer           string
	Script           string
	Temperature      float64
	RNAfold          string
	RNAcofold        string
	Touching         bool
	Format           string
	LogLevel         string
	ProgressInterval time.Duration
}

// New returns a viper instance with defaults and env lookup set up. If path
// is not empty the file is read; its type follows the extension.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	for k, val := range Defaults() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return v, nil
}

// Load converts the settings in v, failing on values of the wrong type
// rather than reading them as zero.
func Load(v *viper.Viper) (Config, error) {
	var (
		c   Config
		err error
	)
	get := func(key string, conv func(any) error) {
		if err != nil {
			return
		}
		if cerr := conv(v.Get(key)); cerr != nil {
			err = errors.WithMessagef(ErrInvalidConfig, "%s: %v", key, cerr)
		}
	}
	get(KeyWindow, func(x any) (e error) { c.Window, e = cast.ToIntE(x); return })
	get(KeyStep, func(x any) (e error) { c.Step, e = cast.ToIntE(x); return })
	get(KeyWorkers, func(x any) (e error) { c.Workers, e = cast.ToIntE(x); return })
	get(KeyScorer, func(x any) (e error) { c.Scorer, e = cast.ToStringE(x); return })
	get(KeyScript, func(x any) (e error) { c.Script, e = cast.ToStringE(x); return })
	get(KeyTemperature, func(x any) (e error) { c.Temperature, e = cast.ToFloat64E(x); return })
	get(KeyRNAfold, func(x any) (e error) { c.RNAfold, e = cast.ToStringE(x); return })
	get(KeyRNAcofold, func(x any) (e error) { c.RNAcofold, e = cast.ToStringE(x); return })
	get(KeyTouching, func(x any) (e error) { c.Touching, e = cast.ToBoolE(x); return })
	get(KeyFormat, func(x any) (e error) { c.Format, e = cast.ToStringE(x); return })
	get(KeyLogLevel, func(x any) (e error) { c.LogLevel, e = cast.ToStringE(x); return })
	get(KeyProgressInterval, func(x any) (e error) { c.ProgressInterval, e = cast.ToDurationE(x); return })
	if err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window < 1:
		return errors.WithMessagef(ErrInvalidConfig, "window %d", c.Window)
	case c.Step < 1:
		return errors.WithMessagef(ErrInvalidConfig, "step %d", c.Step)
	case c.Workers < 1:
		return errors.WithMessagef(ErrInvalidConfig, "workers %d", c.Workers)
	}
	switch c.Scorer {
	case ScorerFold, ScorerGC:
	case ScorerScript:
		if c.Script == "" {
			return errors.WithMessage(ErrInvalidConfig, "script scorer without a script")
		}
	default:
		return errors.WithMessagef(ErrInvalidConfig, "scorer %q", c.Scorer)
	}
	if c.Format != report.FormatText && c.Format != report.FormatCSV {
		return errors.WithMessagef(ErrInvalidConfig, "format %q", c.Format)
	}
	return nil
}

// Render lists every known key with its type and effective value.
func Render(v *viper.Viper) string {
	keys := make([]string, 0, len(Defaults()))
	for k := range Defaults() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := report.NewTable("name", "type", "value")
	for _, k := range keys {
		val := v.Get(k)
		_ = t.Append(k, fmt.Sprintf("%T", val), fmt.Sprintf("%+v", val))
	}
	buffer := &bytes.Buffer{}
	_ = t.RenderText(buffer)
	return buffer.String()
}
