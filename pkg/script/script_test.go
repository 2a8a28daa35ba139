package script

import (
	"context"
	"errors"
	"strings"
	"testing"

	calc "github.com/goliatone/go-calculator"
)

func TestKeypadScriptsPassOnEveryEngine(t *testing.T) {
	suite, err := LoadFile("testdata/keypad.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, engine := range calc.Engines() {
		t.Run(engine, func(t *testing.T) {
			c, err := calc.Load(calc.WithEngine(engine))
			if err != nil {
				t.Fatalf("calculator: %v", err)
			}
			results, err := suite.RunAll(context.Background(), c)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if len(results) != len(suite.Scripts) {
				t.Fatalf("expected %d results, got %d", len(suite.Scripts), len(results))
			}
			for _, result := range results {
				if !result.Passed() {
					t.Errorf("%s: %s", result.Name, strings.Join(result.Failures, "; "))
				}
			}
		})
	}
}

func TestRunRecordsTrace(t *testing.T) {
	sc := Script{Name: "trace", Keys: []string{"2", "+", "3", "="}}
	result, err := Run(context.Background(), calc.New(), sc)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	keys := result.Trace.Keys()
	if strings.Join(keys, " ") != "2 + 3 =" {
		t.Fatalf("unexpected trace keys %v", keys)
	}
	if result.Trace.Final() != result.State {
		t.Fatalf("expected trace final state to match result state")
	}
}

func TestExpectationReportsMismatches(t *testing.T) {
	suite, err := Load(strings.NewReader(`
scripts:
  - name: wrong
    keys: ["2", "+", "3", "="]
    expect:
      current: "6"
      previous: "2"
      overwrite: false
      display:
        current: "6"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	result, err := Run(context.Background(), calc.New(), suite.Scripts[0])
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Passed() {
		t.Fatalf("expected failures")
	}
	if len(result.Failures) != 4 {
		t.Fatalf("expected 4 failures, got %d: %v", len(result.Failures), result.Failures)
	}
}

func TestExpectationNullVersusOmitted(t *testing.T) {
	suite, err := Load(strings.NewReader(`
scripts:
  - name: absent
    keys: ["AC"]
    expect:
      current: null
  - name: unchecked
    keys: ["AC"]
    expect:
      overwrite: false
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if e := suite.Scripts[0].Expect.Current; e == nil || !e.Absent {
		t.Fatalf("expected explicit null to assert absence, got %+v", e)
	}
	if suite.Scripts[1].Expect.Current != nil {
		t.Fatalf("expected omitted field to stay unchecked")
	}
}

func TestLoadRejectsInvalidSuites(t *testing.T) {
	cases := map[string]string{
		"empty":       ``,
		"no scripts":  `scripts: []`,
		"no name":     "scripts:\n  - keys: [\"1\"]\n",
		"unknown key": "scripts:\n  - name: bad\n    keys: [\"%\"]\n",
		"duplicate":   "scripts:\n  - name: a\n  - name: a\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			if !errors.Is(err, ErrInvalidScript) {
				t.Fatalf("expected ErrInvalidScript, got %v", err)
			}
		})
	}

	if _, err := Load(strings.NewReader("scripts:\n  - name: a\n    expect:\n      bogus: 1\n")); err == nil {
		t.Fatalf("expected unknown expectation to fail")
	}
}
