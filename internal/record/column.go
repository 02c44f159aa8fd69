package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value type a column converts raw text into.
type Kind uint8

const (
	KindString Kind = iota
	KindInt        // int64
	KindFloat      // float64
	KindBool       // bool
	KindDateTime   // time.Time
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a textual type name (as used in schema config files)
// to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text":
		return KindString, nil
	case "int", "int64", "integer":
		return KindInt, nil
	case "float", "float64", "double":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBool, nil
	case "datetime", "date", "time":
		return KindDateTime, nil
	default:
		return KindString, fmt.Errorf("record: unknown column kind %q", s)
	}
}

// Default parse configuration shared by freshly built columns.
const (
	DefaultLayout     = time.DateTime // "2006-01-02 15:04:05"
	DefaultTrueToken  = "True"
	DefaultFalseToken = "False"
)

// Column is one typed column of a schema. The Kind tag selects the
// parse rule; Layout and TrueToken/FalseToken are per-kind
// configuration and ignored by kinds that do not use them.
type Column struct {
	Name       string
	Kind       Kind
	Layout     string // KindDateTime only
	TrueToken  string // KindBool only
	FalseToken string // KindBool only
}

// String returns a passthrough string column.
func String(name string) Column {
	return Column{Name: name, Kind: KindString}
}

// Int returns a base-10 integer column producing int64 values.
func Int(name string) Column {
	return Column{Name: name, Kind: KindInt}
}

// Float returns a floating-point column producing float64 values.
func Float(name string) Column {
	return Column{Name: name, Kind: KindFloat}
}

// Bool returns a boolean column matching DefaultTrueToken and
// DefaultFalseToken case-insensitively. Use WithTokens to override.
func Bool(name string) Column {
	return Column{Name: name, Kind: KindBool, TrueToken: DefaultTrueToken, FalseToken: DefaultFalseToken}
}

// DateTime returns a date-time column parsed with layout, or
// DefaultLayout when layout is empty.
func DateTime(name, layout string) Column {
	if layout == "" {
		layout = DefaultLayout
	}
	return Column{Name: name, Kind: KindDateTime, Layout: layout}
}

// WithTokens overrides the literal tokens a boolean column accepts.
func (c Column) WithTokens(trueToken, falseToken string) Column {
	c.TrueToken = trueToken
	c.FalseToken = falseToken
	return c
}

// ConversionError reports raw text that does not satisfy a column's
// parse rule.
type ConversionError struct {
	Column string
	Kind   Kind
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("record: column %q: cannot convert %q to %s", e.Column, e.Value, e.Kind)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (c Column) fail(raw string, err error) error {
	return &ConversionError{Column: c.Name, Kind: c.Kind, Value: raw, Err: err}
}

// Parse converts one raw field into the column's typed value.
// Blank or whitespace-only input yields nil for every kind; this is
// the uniform nullability rule.
func (c Column) Parse(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	switch c.Kind {
	case KindString:
		return raw, nil

	case KindInt:
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, c.fail(raw, err)
		}
		return v, nil

	case KindFloat:
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, c.fail(raw, err)
		}
		return v, nil

	case KindBool:
		trueToken := c.TrueToken
		if trueToken == "" {
			trueToken = DefaultTrueToken
		}
		falseToken := c.FalseToken
		if falseToken == "" {
			falseToken = DefaultFalseToken
		}
		switch {
		case strings.EqualFold(trimmed, trueToken):
			return true, nil
		case strings.EqualFold(trimmed, falseToken):
			return false, nil
		default:
			return nil, c.fail(raw, fmt.Errorf("expected %q or %q", trueToken, falseToken))
		}

	case KindDateTime:
		layout := c.Layout
		if layout == "" {
			layout = DefaultLayout
		}
		v, err := time.Parse(layout, trimmed)
		if err != nil {
			return nil, c.fail(raw, err)
		}
		return v, nil

	default:
		return nil, c.fail(raw, fmt.Errorf("record: unsupported kind %d", c.Kind))
	}
}
