package printjob

import (
	"errors"
	"fmt"
	"strings"
)

const (
	dialectLPStringConstant             = "lp"
	dialectLPRStringConstant            = "lpr"
	unknownDialectMessageConstant       = "unknown tool dialect"
	unknownDialectParseTemplateConstant = "unsupported tool dialect %q"
)

// ToolDialect selects which CUPS submission tool's flag spellings to emit.
type ToolDialect string

// Supported dialect enumerations.
const (
	DialectLP  ToolDialect = ToolDialect(dialectLPStringConstant)
	DialectLPR ToolDialect = ToolDialect(dialectLPRStringConstant)
)

// ErrUnknownDialect indicates a dialect value outside the supported set.
var ErrUnknownDialect = errors.New(unknownDialectMessageConstant)

// dialectSpelling captures how one tool spells the semantically identical
// options. CopiesAttached marks the lpr convention of concatenating the count
// onto the flag with no separating space.
type dialectSpelling struct {
	Executable      string
	DestinationFlag string
	CopiesFlag      string
	CopiesAttached  bool
	TitleFlag       string
}

var dialectSpellingTable = map[ToolDialect]dialectSpelling{
	DialectLP: {
		Executable:      "lp",
		DestinationFlag: "-d",
		CopiesFlag:      "-n",
		CopiesAttached:  false,
		TitleFlag:       "-t",
	},
	DialectLPR: {
		Executable:      "lpr",
		DestinationFlag: "-P",
		CopiesFlag:      "-#",
		CopiesAttached:  true,
		TitleFlag:       "-J",
	},
}

// UnmarshalText decodes a configuration value into a ToolDialect, allowing
// typed configuration fields to validate at load time.
func (dialect *ToolDialect) UnmarshalText(text []byte) error {
	parsedDialect, parseError := ParseDialect(string(text))
	if parseError != nil {
		return parseError
	}
	*dialect = parsedDialect
	return nil
}

// ParseDialect converts a configuration or flag string into a ToolDialect.
// The empty string selects the lp dialect.
func ParseDialect(value string) (ToolDialect, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	switch normalizedValue {
	case "", dialectLPStringConstant:
		return DialectLP, nil
	case dialectLPRStringConstant:
		return DialectLPR, nil
	default:
		return DialectLP, fmt.Errorf(unknownDialectParseTemplateConstant, value)
	}
}

func (dialect ToolDialect) spelling() (dialectSpelling, error) {
	resolvedSpelling, dialectKnown := dialectSpellingTable[dialect]
	if !dialectKnown {
		if dialect == "" {
			return dialectSpellingTable[DialectLP], nil
		}
		return dialectSpelling{}, ErrUnknownDialect
	}
	return resolvedSpelling, nil
}
