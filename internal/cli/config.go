package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment default.
const EnvPrefix = "BUSROUTE_"

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrBadConfig wraps every flag or environment value that cannot be used.
var ErrBadConfig = errors.New("cli: bad configuration")

// Config is the resolved set of options for one command run.
type Config struct {
	Dataset      string
	From         int
	To           int
	NoWalk       bool
	MaxHops      int
	MaxPaths     int
	TieBreak     string
	Strategy     string
	Alternatives bool
	Color        string
	LogLevel     string
	ListDatasets bool
}

// LoadDotEnv reads the given files (".env" when none) into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("cli: load %s: %w", f, err)
		}
	}

	return nil
}

// envKey maps a flag name to its environment variable.
func envKey(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// envReader collects the first parse failure so that flag registration can
// proceed and the error surfaces once the command runs.
type envReader struct {
	err error
}

func (r *envReader) stringVal(flag, fallback string) string {
	if v, ok := os.LookupEnv(envKey(flag)); ok && v != "" {
		return v
	}

	return fallback
}

func (r *envReader) intVal(flag string, fallback int) int {
	v, ok := os.LookupEnv(envKey(flag))
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(fmt.Errorf("%w: %s=%q is not an integer", ErrBadConfig, envKey(flag), v))
		return fallback
	}

	return n
}

func (r *envReader) boolVal(flag string, fallback bool) bool {
	v, ok := os.LookupEnv(envKey(flag))
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(fmt.Errorf("%w: %s=%q is not a boolean", ErrBadConfig, envKey(flag), v))
		return fallback
	}

	return b
}

func (r *envReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// validate checks values cobra cannot check by type alone.
func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: --color must be %s, %s or %s, got %q", ErrBadConfig, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.MaxHops < 0 {
		return fmt.Errorf("%w: --max-hops must be >= 0, got %d", ErrBadConfig, c.MaxHops)
	}
	if c.MaxPaths < 0 {
		return fmt.Errorf("%w: --max-paths must be >= 0, got %d", ErrBadConfig, c.MaxPaths)
	}
	if c.From < 0 || c.To < 0 {
		return fmt.Errorf("%w: stop IDs must be positive", ErrBadConfig)
	}

	return nil
}
