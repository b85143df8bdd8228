package executor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeClipboard struct {
	copied string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = text
	return nil
}

func newTestExecutor() (*Executor, *bytes.Buffer, *bytes.Buffer, *fakeClipboard) {
	var stdout, stderr bytes.Buffer
	cb := &fakeClipboard{}
	e := NewExecutor("/bin/sh").WithClipboard(cb).WithOutput(&stdout, &stderr)
	return e, &stdout, &stderr, cb
}

func TestOutputPrint(t *testing.T) {
	e, stdout, _, _ := newTestExecutor()
	e.WithHooks("sudo ", " | tee out.log")

	if err := e.Output("nmap -F 10.0.0.1", ModePrint); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if got := stdout.String(); got != "sudo nmap -F 10.0.0.1 | tee out.log" {
		t.Errorf("printed %q", got)
	}
}

func TestOutputCopy(t *testing.T) {
	e, stdout, stderr, cb := newTestExecutor()

	if err := e.Output("ls -la", ModeCopy); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if cb.copied != "ls -la" {
		t.Errorf("copied %q", cb.copied)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Copied") {
		t.Errorf("missing confirmation, stderr=%q", stderr.String())
	}
}

func TestOutputCopyFailureFallsBackToPrint(t *testing.T) {
	e, stdout, _, cb := newTestExecutor()
	cb.err = errors.New("no clipboard")

	if err := e.Output("ls", ModeCopy); err == nil {
		t.Error("expected error")
	}
	if stdout.String() != "ls" {
		t.Errorf("stdout = %q, want the command", stdout.String())
	}
}

func TestOutputInternalCommandIsPrinted(t *testing.T) {
	e, stdout, _, cb := newTestExecutor()
	e.WithHooks("sudo ", "")

	if err := e.Output(">set ip=1.2.3.4", ModeCopy); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if stdout.String() != ">set ip=1.2.3.4" || cb.copied != "" {
		t.Errorf("stdout=%q copied=%q", stdout.String(), cb.copied)
	}
}

func TestOutputUnknownMode(t *testing.T) {
	e, _, _, _ := newTestExecutor()
	if err := e.Output("ls", "teleport"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestOutputExec(t *testing.T) {
	e, _, stderr, _ := newTestExecutor()

	if err := e.Output("exit 0", ModeExec); err != nil {
		t.Skipf("no /bin/sh available: %v", err)
	}
	if !strings.Contains(stderr.String(), "exit 0") {
		t.Errorf("missing execution notice, stderr=%q", stderr.String())
	}

	e.WithHooks("", "; exit 3")
	if err := e.Output("true", ModeExec); err == nil {
		t.Error("expected error from failing command")
	}
}
