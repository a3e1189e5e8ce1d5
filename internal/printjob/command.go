package printjob

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/temirov/druck/internal/scratch"
	"github.com/temirov/druck/internal/shellquote"
)

const (
	emptyContentPathMessageConstant     = "content file path must not be empty"
	scratchWriteMessageConstant         = "unable to materialize inline content on scratch storage"
	storageNotConfiguredMessageConstant = "scratch storage not configured"
	commandTokenSeparatorConstant       = " "
	jobOptionFlagConstant               = "-o"
	jobOptionAssignmentConstant         = "="
	scratchFilePrefixConstant           = "druck"
	scratchFileExtensionConstant        = "txt"
)

// ErrEmptyContentPath indicates a file-reference content with an empty path.
var ErrEmptyContentPath = errors.New(emptyContentPathMessageConstant)

// ErrScratchWrite indicates scratch-file allocation or writing failed. The
// underlying operating system detail is deliberately not attached; callers
// needing diagnostics inspect the scratch storage directly.
var ErrScratchWrite = errors.New(scratchWriteMessageConstant)

// ErrStorageNotConfigured indicates inline content was supplied without a
// scratch storage collaborator.
var ErrStorageNotConfigured = errors.New(storageNotConfiguredMessageConstant)

// BuildCommand synthesizes the complete shell command line submitting the
// described job. Token order is fixed: executable, destination, copies,
// title, sorted -o pairs, content path. Destination, title, and the content
// path pass through shellquote; job option pairs are deliberately emitted
// raw (see renderJobOptions). Inline text content is written to storage
// first and the resulting scratch file is left for the OS temp reaper.
func BuildCommand(options JobOptions, content Content, storage scratch.Storage) (string, error) {
	spelling, spellingError := options.Dialect.spelling()
	if spellingError != nil {
		return "", spellingError
	}

	commandTokens := []string{spelling.Executable}

	if len(options.Destination) > 0 {
		commandTokens = append(commandTokens, spelling.DestinationFlag, shellquote.Quote(options.Destination))
	}

	if options.Copies > 0 {
		renderedCopies := strconv.Itoa(options.Copies)
		if spelling.CopiesAttached {
			commandTokens = append(commandTokens, spelling.CopiesFlag+renderedCopies)
		} else {
			commandTokens = append(commandTokens, spelling.CopiesFlag, renderedCopies)
		}
	}

	if len(options.Title) > 0 {
		commandTokens = append(commandTokens, spelling.TitleFlag, shellquote.Quote(options.Title))
	}

	commandTokens = append(commandTokens, renderJobOptions(options.JobOptions)...)

	contentToken, contentError := resolveContentToken(content, storage)
	if contentError != nil {
		return "", contentError
	}
	commandTokens = append(commandTokens, contentToken)

	return strings.Join(commandTokens, commandTokenSeparatorConstant), nil
}

// renderJobOptions emits `-o key=value` token pairs in sorted key order.
//
// Keys and values are intentionally not quoted: CUPS consumes the key=value
// syntax itself and well-formed keys contain no whitespace. Callers must
// supply job options free of shell metacharacters; quoting them here would
// change the observed wire format.
func renderJobOptions(jobOptions map[string]string) []string {
	if len(jobOptions) == 0 {
		return nil
	}

	sortedKeys := make([]string, 0, len(jobOptions))
	for optionKey := range jobOptions {
		sortedKeys = append(sortedKeys, optionKey)
	}
	sort.Strings(sortedKeys)

	renderedTokens := make([]string, 0, len(sortedKeys)*2)
	for _, optionKey := range sortedKeys {
		renderedTokens = append(renderedTokens, jobOptionFlagConstant, optionKey+jobOptionAssignmentConstant+jobOptions[optionKey])
	}
	return renderedTokens
}

func resolveContentToken(content Content, storage scratch.Storage) (string, error) {
	if !content.IsText() {
		if len(content.FilePath()) == 0 {
			return "", ErrEmptyContentPath
		}
		return shellquote.Quote(content.FilePath()), nil
	}

	if storage == nil {
		return "", ErrStorageNotConfigured
	}

	scratchPath := storage.NewPath(scratchFilePrefixConstant, scratchFileExtensionConstant)
	if writeError := storage.WriteAll(scratchPath, []byte(content.Text())); writeError != nil {
		return "", ErrScratchWrite
	}
	return shellquote.Quote(scratchPath), nil
}
