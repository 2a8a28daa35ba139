// Package script replays keypad scripts against a calculator.
//
// A script file is a YAML document holding a list of scripts. Each script
// names the keys to press, in order, and the state expected afterwards:
//
//	scripts:
//	  - name: addition
//	    keys: ["2", "+", "3", "="]
//	    expect:
//	      current: "5"
//	      previous: null
//	      overwrite: true
//	      display:
//	        current: "5"
//
// Operand expectations distinguish an absent operand (null) from an
// unchecked one (field omitted). Keys use the calculator keypad labels
// accepted by calc.ParseKey.
package script
