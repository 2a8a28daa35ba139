package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/text/language"

	calc "github.com/goliatone/go-calculator"
	"github.com/goliatone/go-calculator/internal/cliparse"
	"github.com/goliatone/go-calculator/pkg/script"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code, so deferred
// cleanup always happens before main exits.
func run(args []string) int {
	if err := cliparse.LoadEnv(""); err != nil {
		slog.Error("Error loading .env", "error", err)
		return 1
	}

	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		slog.Error("invalid locale", "locale", cfg.Locale, "error", err)
		return 2
	}

	c, err := calc.Load(
		calc.WithEngine(cfg.Engine),
		calc.WithLocale(locale),
		calc.WithLogger(logger),
		calc.WithEvaluatorLogger(calc.NewSlogEvaluatorLogger(logger)),
		calc.WithProgramCache(calc.NewMemoryProgramCache()),
	)
	if err != nil {
		slog.Error("evaluator unavailable", "engine", cfg.Engine, "error", err)
		return 1
	}
	slog.Debug("calculator ready", "engine", c.Engine(), "locale", locale.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)
	go func() {
		select {
		case <-ctrlc:
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfg.Script != "" {
		return runScript(ctx, c, cfg.Script)
	}

	session := c.NewSession(calc.WithTracing(cfg.Trace))
	if err := repl(ctx, session, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("repl stopped", "error", err)
		return 1
	}
	if cfg.Trace {
		payload, err := session.Trace().ToJSON()
		if err != nil {
			slog.Error("trace encoding failed", "error", err)
			return 1
		}
		fmt.Println(string(payload))
	}
	return 0
}

func runScript(ctx context.Context, c *calc.Calculator, path string) int {
	suite, err := script.LoadFile(path)
	if err != nil {
		slog.Error("script load failed", "error", err)
		return 2
	}
	results, err := suite.RunAll(ctx, c)
	if err != nil {
		slog.Error("script run failed", "error", err)
		return 1
	}

	code := 0
	for _, result := range results {
		if result.Passed() {
			fmt.Printf("PASS %s\n", result.Name)
			continue
		}
		code = 1
		fmt.Printf("FAIL %s\n", result.Name)
		for _, failure := range result.Failures {
			fmt.Printf("    %s\n", failure)
		}
	}
	slog.Info("scripts finished", "total", len(results), "failed", code != 0)
	return code
}

// repl reads whitespace separated key labels per line and prints the display
// after each line. "quit" or "exit" ends the session.
func repl(ctx context.Context, session *calc.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	printDisplay(out, session.Display())
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, token := range strings.Fields(scanner.Text()) {
			switch strings.ToLower(token) {
			case "quit", "exit":
				return nil
			}
			if _, err := session.Press(ctx, token); err != nil {
				if errors.Is(err, calc.ErrUnknownKey) {
					fmt.Fprintf(out, "unknown key %q\n", token)
					continue
				}
				slog.Warn("activity hook failed", "error", err)
			}
		}
		printDisplay(out, session.Display())
	}
	return scanner.Err()
}

func printDisplay(out io.Writer, display calc.Display) {
	fmt.Fprintf(out, "%20s\n%20s\n> ", display.Previous, display.Current)
}
