package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// captureCrash swaps output and exit for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1

	crashMu.Lock()
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(c int) { code = c }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, crashExit = prevOut, prevExit
		crashReset = nil
		crashMu.Unlock()
	})
	return &buf, &code
}

func TestHandleCrashNil(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)

	if buf.Len() != 0 || *code != -1 {
		t.Errorf("Expected nil panic value to be ignored, got output %q code %d", buf.String(), *code)
	}
}

func TestHandleCrashReport(t *testing.T) {
	buf, code := captureCrash(t)
	resets := 0
	RegisterReset(func() { resets++ })

	HandleCrash("boom")

	if resets != 1 {
		t.Errorf("Expected reset hook to run once, ran %d", resets)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") {
		t.Errorf("Expected panic value in report, got %q", out)
	}
	if !strings.Contains(out, "Stack Trace:") {
		t.Error("Expected stack trace in report")
	}

	// Hook is consumed so a second crash cannot re-enter it
	HandleCrash("again")
	if resets != 1 {
		t.Errorf("Expected reset hook consumed, ran %d", resets)
	}
}

func TestGoRecovers(t *testing.T) {
	buf, code := captureCrash(t)
	var wg sync.WaitGroup
	wg.Add(1)

	crashMu.Lock()
	crashExit = func(c int) {
		*code = c
		wg.Done()
	}
	crashMu.Unlock()

	Go(func() { panic("worker failed") })
	wg.Wait()

	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "worker failed") {
		t.Errorf("Expected worker panic in report, got %q", buf.String())
	}
}
