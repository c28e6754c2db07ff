package dateshift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is wrapped by ParseError for blank lines.
	ErrEmpty = errors.New("empty value")
	// ErrNotISO8601 is wrapped by ParseError when the text does not match
	// any supported ISO-8601 date or date-time form.
	ErrNotISO8601 = errors.New("not an ISO-8601 date or date-time")
	// ErrYearZero is wrapped by ParseError for year 0000.
	ErrYearZero = errors.New("year 0000 is not supported")
)

// ParseError reports a value that is not a valid ISO-8601 date or date-time.
type ParseError struct {
	Line  int // 1-based input line, 0 when unknown
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid ISO-8601 value %q: %v", e.Input, e.Err)
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// RangeError reports a shift whose result falls outside years 0001-9999.
type RangeError struct {
	Line   int
	Input  string
	Offset int
}

func (e *RangeError) Error() string {
	msg := fmt.Sprintf("shifting %q by %d days leaves the supported year range %04d-%04d",
		e.Input, e.Offset, minYear, maxYear)
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// ArgumentError reports a missing or malformed day offset argument.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return "offset argument: " + e.Reason
	}
	return fmt.Sprintf("offset argument %q: %s", e.Arg, e.Reason)
}

// ParseOffset parses the day offset given on the command line: a base-10
// signed integer with an optional leading '+'.
func ParseOffset(arg string) (int, error) {
	if arg == "" {
		return 0, &ArgumentError{Reason: "missing number of days"}
	}
	if strings.TrimSpace(arg) != arg {
		return 0, &ArgumentError{Arg: arg, Reason: "must not contain whitespace"}
	}

	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &ArgumentError{Arg: arg, Reason: "out of range"}
		}
		return 0, &ArgumentError{Arg: arg, Reason: "not a base-10 integer"}
	}
	if n > MaxOffsetDays || n < -MaxOffsetDays {
		return 0, &ArgumentError{Arg: arg, Reason: fmt.Sprintf("magnitude exceeds %d days", MaxOffsetDays)}
	}
	return int(n), nil
}

// AtLine records the input line number on parse and range errors and
// returns err unchanged otherwise.
func AtLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = line
		return err
	}
	var re *RangeError
	if errors.As(err, &re) {
		re.Line = line
	}
	return err
}
