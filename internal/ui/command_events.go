package ui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/druck/internal/execshell"
)

const (
	submissionStartedMessageTemplateConstant = "Submitting %s"
	submissionDoneMessageTemplateConstant    = "Submitted %s"
	submissionFailedMessageTemplateConstant  = "Submission via %s failed with exit code %d"
	submissionSpawnMessageTemplateConstant   = "Submission via %s failed: %s"
	unknownFailureMessageConstant            = "unknown error"
)

// SubmissionEventFormatter builds human-readable messages for print
// submission lifecycle events. Only the submission tool name is shown; the
// full command line stays in the structured logs.
type SubmissionEventFormatter struct{}

// BuildStartedMessage formats the message describing a submission about to run.
func (formatter SubmissionEventFormatter) BuildStartedMessage(commandLine string) string {
	return fmt.Sprintf(submissionStartedMessageTemplateConstant, formatter.toolLabel(commandLine))
}

// BuildSuccessMessage formats the message describing an accepted submission.
func (formatter SubmissionEventFormatter) BuildSuccessMessage(commandLine string) string {
	return fmt.Sprintf(submissionDoneMessageTemplateConstant, formatter.toolLabel(commandLine))
}

// BuildFailureMessage formats the message describing a non-zero tool exit.
func (formatter SubmissionEventFormatter) BuildFailureMessage(commandLine string, result execshell.ExecutionResult) string {
	return fmt.Sprintf(submissionFailedMessageTemplateConstant, formatter.toolLabel(commandLine), result.ExitCode)
}

// BuildExecutionFailureMessage formats the message describing a shell that never started.
func (formatter SubmissionEventFormatter) BuildExecutionFailureMessage(commandLine string, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(submissionSpawnMessageTemplateConstant, formatter.toolLabel(commandLine), failureMessage)
}

// toolLabel extracts the first token of the command line, which is always the
// submission tool name emitted by the command builder.
func (formatter SubmissionEventFormatter) toolLabel(commandLine string) string {
	for characterIndex := 0; characterIndex < len(commandLine); characterIndex++ {
		if commandLine[characterIndex] == ' ' {
			return commandLine[:characterIndex]
		}
	}
	return commandLine
}

// ConsoleSubmissionEventLogger renders submission lifecycle events through a
// zap logger configured for human-readable output. It implements
// execshell.CommandEventObserver.
type ConsoleSubmissionEventLogger struct {
	logger    *zap.Logger
	formatter SubmissionEventFormatter
}

// NewConsoleSubmissionEventLogger constructs a console event logger backed by
// the provided zap logger.
func NewConsoleSubmissionEventLogger(logger *zap.Logger) *ConsoleSubmissionEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleSubmissionEventLogger{logger: logger, formatter: SubmissionEventFormatter{}}
}

// CommandStarted logs submission start notifications.
func (eventLogger *ConsoleSubmissionEventLogger) CommandStarted(commandLine string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(commandLine))
}

// CommandCompleted logs accepted submissions.
func (eventLogger *ConsoleSubmissionEventLogger) CommandCompleted(commandLine string, _ execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(commandLine))
}

// CommandFailed logs submissions the tool rejected with a non-zero exit.
func (eventLogger *ConsoleSubmissionEventLogger) CommandFailed(commandLine string, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(commandLine, result))
}

// CommandExecutionFailed logs shells that could not be spawned.
func (eventLogger *ConsoleSubmissionEventLogger) CommandExecutionFailed(commandLine string, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(commandLine, failure))
}
