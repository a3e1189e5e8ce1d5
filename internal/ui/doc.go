// Package ui provides helpers for formatting human-readable console output.
//
// The helpers translate submission lifecycle events into concise messages so
// command feedback remains actionable for CLI users while the full command
// lines continue to flow through structured loggers.
package ui
