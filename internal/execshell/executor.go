package execshell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant = "logger not configured"
	runnerNotConfiguredMessageConstant = "command runner not configured"
	commandStartedMessageConstant      = "executing shell command"
	commandCompletedMessageConstant    = "shell command completed"
	commandFailedMessageConstant       = "shell command exited non-zero"
	commandSpawnFailedMessageConstant  = "shell command could not be executed"
	logFieldCommandLineConstant        = "command_line"
	logFieldExitCodeConstant           = "exit_code"
	commandFailedErrorTemplateConstant = "shell command exited with code %d"
	commandSpawnErrorMessageConstant   = "shell command failed to start"
)

// ErrLoggerNotConfigured indicates the executor was built without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was built without a runner.
var ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)

// CommandFailedError reports a shell exit with a non-zero status. The
// subprocess's output is not carried; only the exit code distinguishes the
// failure.
type CommandFailedError struct {
	ExitCode int
}

// Error describes the non-zero exit.
func (failure CommandFailedError) Error() string {
	return fmt.Sprintf(commandFailedErrorTemplateConstant, failure.ExitCode)
}

// CommandExecutionError reports that the shell could not be spawned. The
// underlying operating system error is deliberately not attached; callers
// needing diagnostics observe the runner directly.
type CommandExecutionError struct{}

// Error describes the spawn failure.
func (CommandExecutionError) Error() string {
	return commandSpawnErrorMessageConstant
}

// ShellExecutor runs command lines through a ShellCommandRunner with
// structured logging and lifecycle observation.
type ShellExecutor struct {
	logger   *zap.Logger
	runner   ShellCommandRunner
	observer CommandEventObserver
}

// NewShellExecutor validates dependencies and constructs an executor. Extra
// observers beyond the first are ignored; passing none installs a no-op
// observer.
func NewShellExecutor(logger *zap.Logger, runner ShellCommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	var observer CommandEventObserver = noopCommandEventObserver{}
	if len(observers) > 0 && observers[0] != nil {
		observer = observers[0]
	}

	return &ShellExecutor{logger: logger, runner: runner, observer: observer}, nil
}

// Execute runs the command line and converts non-zero exits and spawn
// failures into typed errors.
func (executor *ShellExecutor) Execute(executionContext context.Context, commandLine string) (ExecutionResult, error) {
	executor.logger.Debug(commandStartedMessageConstant, zap.String(logFieldCommandLineConstant, commandLine))
	executor.observer.CommandStarted(commandLine)

	executionResult, runError := executor.runner.Run(executionContext, commandLine)
	if runError != nil {
		executor.logger.Error(
			commandSpawnFailedMessageConstant,
			zap.String(logFieldCommandLineConstant, commandLine),
			zap.Error(runError),
		)
		executor.observer.CommandExecutionFailed(commandLine, runError)
		return ExecutionResult{}, CommandExecutionError{}
	}

	if executionResult.ExitCode != successfulExitCodeConstant {
		executor.logger.Error(
			commandFailedMessageConstant,
			zap.String(logFieldCommandLineConstant, commandLine),
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		)
		executor.observer.CommandFailed(commandLine, executionResult)
		return executionResult, CommandFailedError{ExitCode: executionResult.ExitCode}
	}

	executor.logger.Debug(
		commandCompletedMessageConstant,
		zap.String(logFieldCommandLineConstant, commandLine),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
	)
	executor.observer.CommandCompleted(commandLine, executionResult)
	return executionResult, nil
}
