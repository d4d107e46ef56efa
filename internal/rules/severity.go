package rules

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Severity tells the linting engine how to report a rule violation.
type Severity int

const (
	// Off disables the rule.
	Off Severity = 0
	// Warn reports violations as warnings.
	Warn Severity = 1
	// Error reports violations as errors.
	Error Severity = 2
)

func (severity Severity) String() string {
	switch severity {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "Severity(" + strconv.Itoa(int(severity)) + ")"
	}
}

// ParseSeverity reads a severity expressed either as a number (0, 1, 2) or as
// its name ("off", "warn", "error").
func ParseSeverity(value any) (Severity, error) {
	var number int64

	switch typed := value.(type) {
	case Severity:
		number = int64(typed)
	case int:
		number = int64(typed)
	case int64:
		number = typed
	case uint64:
		number = int64(typed) //nolint:gosec
	case float64:
		if typed != float64(int64(typed)) {
			return Off, fmt.Errorf("invalid severity %v: not an integer", typed)
		}
		number = int64(typed)
	case json.Number:
		parsed, err := typed.Int64()
		if err != nil {
			return Off, fmt.Errorf("invalid severity %s: %w", typed, err)
		}
		number = parsed
	case string:
		switch typed {
		case "off":
			return Off, nil
		case "warn":
			return Warn, nil
		case "error":
			return Error, nil
		default:
			return Off, fmt.Errorf("invalid severity '%s': expected one of off, warn, error", typed)
		}
	default:
		return Off, fmt.Errorf("invalid severity %v: expected a number or a string", value)
	}

	if number < int64(Off) || number > int64(Error) {
		return Off, fmt.Errorf("invalid severity %d: expected 0, 1 or 2", number)
	}

	return Severity(number), nil
}

// SeverityOf returns the severity of a rule value: either the value itself or
// the first element of a list.
func SeverityOf(value any) (Severity, error) {
	if list, ok := value.([]any); ok {
		if len(list) == 0 {
			return Off, fmt.Errorf("invalid rule value: empty list")
		}

		return ParseSeverity(list[0])
	}

	return ParseSeverity(value)
}

// Options returns the options given to a rule, if any.
func Options(value any) []any {
	if list, ok := value.([]any); ok && len(list) > 1 {
		return list[1:]
	}

	return nil
}
