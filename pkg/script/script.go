package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	calc "github.com/goliatone/go-calculator"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("script: invalid script")

// Suite is the top level document of a script file.
type Suite struct {
	Scripts []Script `yaml:"scripts"`
}

// Script is a named key sequence with the expected end state.
type Script struct {
	Name   string      `yaml:"name"`
	Keys   []string    `yaml:"keys"`
	Expect Expectation `yaml:"expect"`
}

// Result is the outcome of running one script.
type Result struct {
	Name     string
	State    calc.State
	Display  calc.Display
	Trace    calc.Trace
	Failures []string
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Load decodes and validates a suite.
func Load(r io.Reader) (Suite, error) {
	var suite Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return Suite{}, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		return Suite{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

// LoadFile reads a suite from path.
func LoadFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	suite, err := Load(f)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// Validate checks that every script is named and uses known keys.
func (s Suite) Validate() error {
	if len(s.Scripts) == 0 {
		return fmt.Errorf("%w: no scripts", ErrInvalidScript)
	}
	seen := make(map[string]struct{}, len(s.Scripts))
	for i, sc := range s.Scripts {
		if sc.Name == "" {
			return fmt.Errorf("%w: script %d has no name", ErrInvalidScript, i)
		}
		if _, dup := seen[sc.Name]; dup {
			return fmt.Errorf("%w: duplicate script %q", ErrInvalidScript, sc.Name)
		}
		seen[sc.Name] = struct{}{}
		for j, key := range sc.Keys {
			if _, err := calc.ParseKey(key); err != nil {
				return fmt.Errorf("%w: script %q key %d: %v", ErrInvalidScript, sc.Name, j, err)
			}
		}
	}
	return nil
}

// Run presses the script keys on a fresh traced session of c and checks the
// expectations against the final state.
func Run(ctx context.Context, c *calc.Calculator, sc Script) (Result, error) {
	session := c.NewSession(calc.WithTracing(true))
	for i, key := range sc.Keys {
		if _, err := session.Press(ctx, key); err != nil {
			return Result{}, fmt.Errorf("script %q key %d (%s): %w", sc.Name, i, key, err)
		}
	}
	result := Result{
		Name:    sc.Name,
		State:   session.State(),
		Display: session.Display(),
		Trace:   session.Trace(),
	}
	result.Failures = sc.Expect.Check(result.State, result.Display)
	return result, nil
}

// RunAll runs every script of the suite in order.
func (s Suite) RunAll(ctx context.Context, c *calc.Calculator) ([]Result, error) {
	results := make([]Result, 0, len(s.Scripts))
	for _, sc := range s.Scripts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := Run(ctx, c, sc)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
