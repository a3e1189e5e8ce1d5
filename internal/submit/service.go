package submit

import (
	"context"
	"errors"

	"github.com/temirov/druck/internal/execshell"
	"github.com/temirov/druck/internal/printjob"
	"github.com/temirov/druck/internal/scratch"
)

const (
	executorMissingMessageConstant  = "shell executor not configured"
	submissionFailedMessageConstant = "print job submission failed"
)

// ErrExecutorNotConfigured indicates the shell executor dependency was missing.
var ErrExecutorNotConfigured = errors.New(executorMissingMessageConstant)

// ErrSubmissionFailed indicates the submission tool exited non-zero or could
// not be spawned. The failure is deliberately opaque; callers wanting
// diagnostics inspect the executor's structured logs.
var ErrSubmissionFailed = errors.New(submissionFailedMessageConstant)

// ShellExecutor abstracts command-line execution for testability.
type ShellExecutor interface {
	Execute(executionContext context.Context, commandLine string) (execshell.ExecutionResult, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Executor ShellExecutor
	Storage  scratch.Storage
}

// Service submits print jobs. A single service instance may submit any number
// of independent jobs; it holds no per-job state.
type Service struct {
	executor ShellExecutor
	storage  scratch.Storage
}

// NewService constructs a Service from the provided dependencies. Storage may
// be nil when every submitted job references an existing file.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Service{executor: dependencies.Executor, storage: dependencies.Storage}, nil
}

// BuildCommand synthesizes the command line for the job without executing it.
// Inline text content is still materialized on scratch storage so the
// returned command line is runnable as-is.
func (service *Service) BuildCommand(options printjob.JobOptions, content printjob.Content) (string, error) {
	return printjob.BuildCommand(options, content, service.storage)
}

// Submit builds the command line and executes it through the shell executor.
// Construction errors keep their kinds; execution failures collapse into
// ErrSubmissionFailed.
func (service *Service) Submit(executionContext context.Context, options printjob.JobOptions, content printjob.Content) error {
	commandLine, buildError := service.BuildCommand(options, content)
	if buildError != nil {
		return buildError
	}

	if _, executionError := service.executor.Execute(executionContext, commandLine); executionError != nil {
		return ErrSubmissionFailed
	}
	return nil
}
