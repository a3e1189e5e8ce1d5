// Package submit glues command synthesis to shell execution: it builds the
// print command line for a job and hands it to the shell executor, reporting
// any non-zero exit or spawn failure as one opaque submission failure. The
// package also provides the `print` CLI command.
package submit
