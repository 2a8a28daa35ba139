/*
Package cliparse handles command-line argument parsing and configuration for
the calc binary.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-engine  Evaluator engine: expr (default), cel, js
	-locale  Display locale (default en-US)
	-script  YAML keypad script to run instead of the REPL
	-trace   Print the session trace as JSON on exit
	-v       Debug logging

# Environment Variables

Flags fall back to environment variables:

	CALC_ENGINE    → -engine
	CALC_LOCALE    → -locale
	CALC_LOG_LEVEL → -v (debug, info, warn, error)

CLI flags take precedence over environment variables. LoadEnv reads a .env
file first, without overriding variables that are already set.
*/
package cliparse
