// Package filter drives the line-oriented stdin to stdout loop: one
// ISO-8601 value in, one shifted value out, in input order.
package filter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"adddays/internal/dateshift"

	"go.uber.org/zap"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

// Policy selects what happens to a line that cannot be shifted.
type Policy string

const (
	// PolicyAbort stops at the first bad line.
	PolicyAbort Policy = "abort"
	// PolicySkip reports the bad line and keeps going.
	PolicySkip Policy = "skip"
)

// ParsePolicy validates a policy name. Empty means PolicyAbort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, PolicyAbort, PolicySkip)
}

// Options configures a Run.
type Options struct {
	OffsetDays   int
	Policy       Policy
	MaxLineBytes int
	Logger       *zap.Logger
}

// Stats counts lines seen by a Run.
type Stats struct {
	Read    int
	Written int
	Skipped int
}

// Run reads r until EOF, writing each shifted value followed by a newline
// to w as soon as it is computed. With PolicyAbort the first bad line ends
// the run with a *dateshift.ParseError or *dateshift.RangeError carrying
// its line number; output already written stays written.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var stats Stats

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	scanner := bufio.NewScanner(r)
	// The scanner's limit is the larger of maxLine and the initial capacity.
	scanner.Buffer(make([]byte, 0, min(4096, maxLine)), maxLine)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Read++

		line := scanner.Text()
		out, err := dateshift.Shift(line, opts.OffsetDays)
		if err != nil {
			err = dateshift.AtLine(err, stats.Read)
			if opts.Policy != PolicySkip || !isLineError(err) {
				return stats, err
			}
			stats.Skipped++
			logger.Warn("skipping line",
				zap.Int("line", stats.Read),
				zap.String("input", line),
				zap.Error(err))
			continue
		}

		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.Written++
		logger.Debug("shifted", zap.Int("line", stats.Read), zap.String("output", out))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line %d longer than %d bytes: %w", stats.Read+1, maxLine, err)
		}
		return stats, fmt.Errorf("read input: %w", err)
	}
	// Cancelled while blocked in Scan; EOF must not look like success.
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	logger.Info("run complete",
		zap.Int("read", stats.Read),
		zap.Int("written", stats.Written),
		zap.Int("skipped", stats.Skipped))
	return stats, nil
}

func isLineError(err error) bool {
	var pe *dateshift.ParseError
	var re *dateshift.RangeError
	return errors.As(err, &pe) || errors.As(err, &re)
}
