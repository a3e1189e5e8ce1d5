package execshell

import (
	"context"
	"errors"
	"os/exec"
)

const (
	shellInterpreterNameConstant   = "sh"
	shellCommandFlagConstant       = "-c"
	successfulExitCodeConstant     = 0
	emptyCommandLineMessageConstant = "command line must not be empty"
)

// ErrEmptyCommandLine indicates an attempt to execute an empty command line.
var ErrEmptyCommandLine = errors.New(emptyCommandLineMessageConstant)

// ExecutionResult captures the observable outcome of a shell invocation.
// Standard output and error are deliberately not captured; submission is
// fire-and-forget and only the exit status matters.
type ExecutionResult struct {
	ExitCode int
}

// ShellCommandRunner represents the ability to execute one command line
// through a POSIX shell interpreter.
type ShellCommandRunner interface {
	Run(executionContext context.Context, commandLine string) (ExecutionResult, error)
}

// OSShellRunner executes command lines via `sh -c` using operating system
// facilities. The command line is the sole trust boundary: every untrusted
// substring inside it must already be quoted.
type OSShellRunner struct{}

// NewOSShellRunner constructs a runner backed by os/exec.
func NewOSShellRunner() *OSShellRunner {
	return &OSShellRunner{}
}

// Run executes the supplied command line and reports its exit code. A
// non-zero exit is a result, not an error; errors indicate the process could
// not be spawned at all.
func (runner *OSShellRunner) Run(executionContext context.Context, commandLine string) (ExecutionResult, error) {
	if len(commandLine) == 0 {
		return ExecutionResult{}, ErrEmptyCommandLine
	}

	executable := exec.CommandContext(executionContext, shellInterpreterNameConstant, shellCommandFlagConstant, commandLine)

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return ExecutionResult{ExitCode: exitError.ExitCode()}, nil
		}
		return ExecutionResult{}, runError
	}

	return ExecutionResult{ExitCode: successfulExitCodeConstant}, nil
}
