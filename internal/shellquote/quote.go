package shellquote

import "strings"

const (
	emptyLiteralConstant      = "''"
	singleQuoteConstant       = "'"
	singleQuoteBridgeConstant = `'"'"'`
)

// Quote encodes value as a POSIX shell single-quoted literal.
//
// A shell interprets the returned token as exactly the original value with no
// expansion. Single quotes cannot appear inside a single-quoted string, so
// each embedded quote is bridged with the sequence '"'"' (close the quoted
// segment, emit a literal quote from a double-quoted segment, reopen). The
// empty string encodes to the two-character literal '' so the token is never
// omitted.
func Quote(value string) string {
	if len(value) == 0 {
		return emptyLiteralConstant
	}

	bridgedValue := strings.ReplaceAll(value, singleQuoteConstant, singleQuoteBridgeConstant)
	return singleQuoteConstant + bridgedValue + singleQuoteConstant
}
