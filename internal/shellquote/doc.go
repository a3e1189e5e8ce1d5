// Package shellquote encodes arbitrary strings as POSIX shell single-quoted
// literals so untrusted values can be embedded in command lines without
// breaking out of their argument position.
package shellquote
