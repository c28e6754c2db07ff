package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adddays/internal/dateshift"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, ctx context.Context, stdin io.Reader, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(ctx, args, stdin, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// untouchedStdin fails the test if anything reads from it.
type untouchedStdin struct{ t *testing.T }

func (u untouchedStdin) Read([]byte) (int, error) {
	u.t.Error("stdin was read before the offset was validated")
	return 0, io.EOF
}

func TestExecuteShiftsLines(t *testing.T) {
	in := strings.NewReader("2024-01-15\n2024-01-31\n2024-02-28\n")
	res := runCLI(t, context.Background(), in, "5")

	require.Equal(t, exitOK, res.code, res.stderr)
	require.Equal(t, "2024-01-20\n2024-02-05\n2024-03-04\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestExecuteNegativeOffset(t *testing.T) {
	res := runCLI(t, context.Background(), strings.NewReader("2024-01-15T10:30:00\n"), "-10")
	require.Equal(t, exitOK, res.code, res.stderr)
	require.Equal(t, "2024-01-05T10:30:00\n", res.stdout)
}

func TestExecuteNegativeOffsetBeforeFlags(t *testing.T) {
	res := runCLI(t, context.Background(), strings.NewReader("oops\n2024-03-01\n"), "-1", "--on-error", "skip")
	require.Equal(t, exitOK, res.code, res.stderr)
	require.Equal(t, "2024-02-29\n", res.stdout)
}

func TestExecuteAbortsOnBadLine(t *testing.T) {
	res := runCLI(t, context.Background(), strings.NewReader("2024-01-15\nnot-a-date\n2024-01-16\n"), "5")

	require.Equal(t, exitInput, res.code)
	require.Equal(t, "2024-01-20\n", res.stdout)
	require.Contains(t, res.stderr, "error:")
	require.Contains(t, res.stderr, `line 2: invalid ISO-8601 value "not-a-date"`)
	require.NotContains(t, res.stderr, "usage:")
}

func TestExecuteArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing", nil, "missing number of days"},
		{"not an integer", []string{"five"}, `offset argument "five": not a base-10 integer`},
		{"fraction", []string{"1.5"}, "not a base-10 integer"},
		{"too many", []string{"1", "2"}, "expected exactly one offset, got 2 arguments"},
		{"unknown flag", []string{"--bogus", "1"}, "unknown flag: --bogus"},
		{"unknown policy", []string{"--on-error=ignore", "1"}, `unknown error policy "ignore"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, context.Background(), untouchedStdin{t}, tt.args...)
			require.Equal(t, exitUsage, res.code)
			require.Empty(t, res.stdout)
			require.Contains(t, res.stderr, tt.want)
			require.Contains(t, res.stderr, "usage: add_days <offsetDays>")
		})
	}
}

func TestExecuteSkipPolicy(t *testing.T) {
	res := runCLI(t, context.Background(), strings.NewReader("garbage\n2024-01-15\n"), "--on-error=skip", "1")

	require.Equal(t, exitOK, res.code)
	require.Equal(t, "2024-01-16\n", res.stdout)
	require.Contains(t, res.stderr, "skipping line")
	require.Contains(t, res.stderr, "skipped 1 of 2 lines")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "add_days.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestExecuteConfigPolicy(t *testing.T) {
	path := writeConfig(t, "filter:\n  on_error: skip\n")

	res := runCLI(t, context.Background(), strings.NewReader("bad\n2024-01-15\n"), "--config", path, "1")
	require.Equal(t, exitOK, res.code, res.stderr)
	require.Equal(t, "2024-01-16\n", res.stdout)

	// the flag wins over the file
	res = runCLI(t, context.Background(), strings.NewReader("bad\n2024-01-15\n"), "--config", path, "--on-error=abort", "1")
	require.Equal(t, exitInput, res.code)
	require.Empty(t, res.stdout)
}

func TestExecuteConfigLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	path := writeConfig(t, "logging:\n  level: info\n  format: json\n  file: "+logPath+"\n")

	res := runCLI(t, context.Background(), strings.NewReader("2024-01-15\n"), "--config", path, "1")
	require.Equal(t, exitOK, res.code, res.stderr)
	require.Empty(t, res.stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"run complete"`)
	require.Contains(t, string(data), `"component":"filter"`)
}

func TestExecuteConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	res := runCLI(t, context.Background(), untouchedStdin{t}, "--config", missing, "1")
	require.Equal(t, exitUsage, res.code)
	require.Contains(t, res.stderr, "failed to read config")

	invalid := writeConfig(t, "logging:\n  level: chatty\n")
	res = runCLI(t, context.Background(), untouchedStdin{t}, "--config", invalid, "1")
	require.Equal(t, exitUsage, res.code)
	require.Contains(t, res.stderr, "logging.level")
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runCLI(t, ctx, strings.NewReader("2024-01-15\n"), "1")
	require.Equal(t, exitInterrupted, res.code)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "interrupted")
}

func TestExecuteVersion(t *testing.T) {
	res := runCLI(t, context.Background(), untouchedStdin{t}, "--version")
	require.Equal(t, exitOK, res.code)
	require.Contains(t, res.stdout, "add_days version dev")
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"5"}, []string{"--", "5"}},
		{[]string{"-10"}, []string{"--", "-10"}},
		{[]string{"-10", "-v"}, []string{"-v", "--", "-10"}},
		{[]string{"--on-error", "skip", "-3"}, []string{"--on-error", "skip", "--", "-3"}},
		{[]string{"--config=c.yaml", "7"}, []string{"--config=c.yaml", "--", "7"}},
		{[]string{"--", "-2"}, []string{"--", "-2"}},
		{[]string{"--help"}, []string{"--help"}},
		{[]string{"-"}, []string{"--", "-"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, normalizeArgs(tt.in)); diff != "" {
			t.Errorf("normalizeArgs(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != exitOK {
		t.Errorf("expected %d for nil, got %d", exitOK, got)
	}
	if got := exitCode(&dateshift.ArgumentError{Reason: "x"}); got != exitUsage {
		t.Errorf("expected %d for ArgumentError, got %d", exitUsage, got)
	}
	if got := exitCode(errors.New("read input: boom")); got != exitInput {
		t.Errorf("expected %d for plain error, got %d", exitInput, got)
	}
	if got := exitCode(classify(context.Canceled)); got != exitInterrupted {
		t.Errorf("expected %d for cancellation, got %d", exitInterrupted, got)
	}
}
