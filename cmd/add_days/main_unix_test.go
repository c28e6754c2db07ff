//go:build unix

package main

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"
)

// TestHelperProcess runs main when re-executed by a test below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("ADD_DAYS_HELPER_PROCESS") != "1" {
		return
	}
	os.Args = []string{"add_days", "5"}
	main()
}

func TestInterruptWhileWaitingForInput(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(), "ADD_DAYS_HELPER_PROCESS=1")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("stdin pipe: %v", err)
	}
	defer stdin.Close()

	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// give the process time to block on its first read
	time.Sleep(300 * time.Millisecond)
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatalf("signal: %v", err)
	}

	waited := make(chan error, 1)
	go func() { waited <- cmd.Wait() }()

	select {
	case err := <-waited:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected the process to die from SIGINT, got %v", err)
		}
		ws, ok := exitErr.Sys().(syscall.WaitStatus)
		if !ok || !ws.Signaled() || ws.Signal() != syscall.SIGINT {
			t.Fatalf("expected termination by SIGINT, got %v", exitErr)
		}
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		<-waited
		t.Fatal("process still running after SIGINT")
	}
}
