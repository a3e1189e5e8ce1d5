package execshell

// CommandEventObserver receives lifecycle notifications for shell command
// execution so user-facing surfaces can report progress without coupling to
// the executor.
type CommandEventObserver interface {
	// CommandStarted notifies observers that command execution is beginning.
	CommandStarted(commandLine string)
	// CommandCompleted notifies observers that the shell exited successfully.
	CommandCompleted(commandLine string, result ExecutionResult)
	// CommandFailed notifies observers that the shell exited non-zero.
	CommandFailed(commandLine string, result ExecutionResult)
	// CommandExecutionFailed reports failures to spawn the shell at all.
	CommandExecutionFailed(commandLine string, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(string)                    {}
func (noopCommandEventObserver) CommandCompleted(string, ExecutionResult) {}
func (noopCommandEventObserver) CommandFailed(string, ExecutionResult)    {}
func (noopCommandEventObserver) CommandExecutionFailed(string, error)     {}
