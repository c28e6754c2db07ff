package main

import (
	"context"
	"errors"

	"adddays/internal/dateshift"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK          = 0
	exitInput       = 1 // unparsable line, I/O failure
	exitUsage       = 2 // bad offset, flags or config; stdin untouched
	exitInterrupted = 130
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	var ae *dateshift.ArgumentError
	if errors.As(err, &ae) {
		return exitUsage
	}
	return exitInput
}

// classify attaches an exit code to an error returned by the line loop.
func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return withCode(exitInterrupted, errors.New("interrupted"))
	}
	return withCode(exitInput, err)
}
