package cliparse

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Engine   string
	Locale   string
	Script   string
	Trace    bool
	LogLevel slog.Level
}

// ParseFlags reads flags, then fills whatever was left empty from the
// environment and finally from defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var verbose bool
	var level string

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Engine, "engine", "", "Evaluator engine (expr, cel or js)")
	fs.StringVar(&cfg.Locale, "locale", "", "Display locale, e.g. en-US or de-DE")
	fs.StringVar(&cfg.Script, "script", "", "Run a YAML keypad script instead of the REPL")
	fs.BoolVar(&cfg.Trace, "trace", false, "Print the session trace as JSON on exit")
	fs.BoolVar(&verbose, "v", false, "Verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.New("unexpected arguments: " + strings.Join(fs.Args(), " "))
	}

	if cfg.Engine == "" {
		cfg.Engine = os.Getenv("CALC_ENGINE")
		if cfg.Engine == "" {
			cfg.Engine = "expr"
		}
	}
	cfg.Engine = strings.ToLower(strings.TrimSpace(cfg.Engine))

	if cfg.Locale == "" {
		cfg.Locale = os.Getenv("CALC_LOCALE")
		if cfg.Locale == "" {
			cfg.Locale = "en-US"
		}
	}

	cfg.LogLevel = slog.LevelInfo
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	} else if level = os.Getenv("CALC_LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, errors.New("invalid CALC_LOG_LEVEL env variable")
		}
	}

	return cfg, nil
}

// LoadEnv loads a .env file into the process environment. A missing file is
// not an error; variables already set are kept.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
