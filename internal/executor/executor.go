package executor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ============================================================================
// Interfaces
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard with the system clipboard
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// ============================================================================
// Output modes
// ============================================================================

// Output modes for the final command
const (
	ModePrint = "print"
	ModeCopy  = "copy"
	ModeExec  = "exec"
)

// ============================================================================
// Executor
// ============================================================================

// Executor delivers the final command: printed, copied, or run in a shell
type Executor struct {
	shell     string
	preHook   string
	postHook  string
	clipboard Clipboard
	stdout    io.Writer
	stderr    io.Writer
}

// NewExecutor creates an executor running commands with shell
func NewExecutor(shell string) *Executor {
	return &Executor{
		shell:     shell,
		clipboard: systemClipboard{},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (e *Executor) WithClipboard(c Clipboard) *Executor {
	e.clipboard = c
	return e
}

// WithHooks sets strings prepended and appended to every final command
func (e *Executor) WithHooks(pre, post string) *Executor {
	e.preHook = pre
	e.postHook = post
	return e
}

// WithOutput redirects printed commands and status messages
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute runs a command interactively with inherited stdin/stdout/stderr
func (e *Executor) Execute(command string) error {
	cmd := exec.Command(e.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd.Run()
}

// Finalize applies the pre and post hooks to command
func (e *Executor) Finalize(command string) string {
	return e.preHook + command + e.postHook
}

// Output delivers command according to mode. Internal commands (leading '>')
// are never run; they are printed for the caller to interpret.
func (e *Executor) Output(command, mode string) error {
	if strings.HasPrefix(command, ">") {
		fmt.Fprint(e.stdout, command)
		return nil
	}

	finalCmd := e.Finalize(command)

	switch mode {
	case ModeExec:
		fmt.Fprintf(e.stderr, "\033[1;32m▶ Executing:\033[0m %s\n", finalCmd)
		return e.Execute(finalCmd)
	case ModeCopy:
		if err := e.clipboard.Copy(finalCmd); err != nil {
			// Fall back to printing so the command is not lost
			fmt.Fprint(e.stdout, finalCmd)
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(e.stderr, "\033[1;33m✓ Copied to clipboard\033[0m\n")
		return nil
	case ModePrint, "":
		fmt.Fprint(e.stdout, finalCmd)
		return nil
	default:
		return fmt.Errorf("unknown output mode: %s (supported: print, copy, exec)", mode)
	}
}
