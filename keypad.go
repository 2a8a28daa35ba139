package calc

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKey = errors.New("calc: unknown key")

// Keypad labels for the non-digit buttons.
const (
	KeyClear    = "AC"
	KeyDelete   = "DEL"
	KeyEvaluate = "="
)

var keyAliases = map[string]string{
	"C":         KeyClear,
	"CLEAR":     KeyClear,
	"AC":        KeyClear,
	"DEL":       KeyDelete,
	"DELETE":    KeyDelete,
	"BACKSPACE": KeyDelete,
	"=":         KeyEvaluate,
	"ENTER":     KeyEvaluate,
	"/":         string(OpDivide),
	"X":         string(OpMultiply),
	"×":         string(OpMultiply),
}

// ParseKey maps a keypad label to its action.
func ParseKey(label string) (Action, error) {
	key := strings.TrimSpace(label)
	if alias, ok := keyAliases[strings.ToUpper(key)]; ok {
		key = alias
	}
	switch key {
	case KeyClear:
		return Clear{}, nil
	case KeyDelete:
		return DeleteDigit{}, nil
	case KeyEvaluate:
		return Evaluate{}, nil
	}
	if op := Operation(key); op.Valid() {
		return ChooseOperation{Operation: op}, nil
	}
	if digit := (AddDigit{Digit: key}); digit.Valid() {
		return digit, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKey, label)
}

// KeyFor returns the canonical keypad label of action.
func KeyFor(action Action) string {
	switch a := normalizeAction(action).(type) {
	case AddDigit:
		return a.Digit
	case ChooseOperation:
		return string(a.Operation)
	case Clear:
		return KeyClear
	case DeleteDigit:
		return KeyDelete
	case Evaluate:
		return KeyEvaluate
	default:
		return ""
	}
}

// Keys returns the keypad labels in grid order, row by row.
func Keys() [][]string {
	return [][]string{
		{KeyClear, KeyDelete, string(OpDivide)},
		{"1", "2", "3", string(OpMultiply)},
		{"4", "5", "6", string(OpAdd)},
		{"7", "8", "9", string(OpSubtract)},
		{".", "0", KeyEvaluate},
	}
}
