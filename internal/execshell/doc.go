// Package execshell executes synthesized command lines through a POSIX shell.
//
// It wraps os/exec behind the ShellCommandRunner capability, exposes
// OSShellRunner for default `sh -c` execution, and provides ShellExecutor,
// which adds structured logging and lifecycle observation so submissions stay
// testable without spawning processes.
package execshell
