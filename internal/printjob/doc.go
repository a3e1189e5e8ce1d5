// Package printjob synthesizes shell-safe lp and lpr command lines from
// structured print-job descriptions.
//
// It owns the job option model, the content variants, and the dialect table
// mapping the two CUPS submission tools onto their flag spellings. Every
// attacker-influenced field is routed through shellquote before it reaches
// the command line; the produced string is intended for execution through
// `sh -c`.
package printjob
