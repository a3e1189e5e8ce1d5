package shellquote_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/druck/internal/shellquote"
)

const (
	testEmptyValueCaseNameConstant       = "empty_value"
	testPlainValueCaseNameConstant       = "plain_value"
	testEmbeddedSpaceCaseNameConstant    = "embedded_space"
	testSingleQuoteCaseNameConstant      = "single_quote"
	testManyQuotesCaseNameConstant       = "consecutive_quotes"
	testMetacharactersCaseNameConstant   = "shell_metacharacters"
	testNewlineCaseNameConstant          = "embedded_newline"
	testControlBytesCaseNameConstant     = "control_bytes"
	testLeadingTrailingCaseNameConstant  = "leading_and_trailing_quotes"
	testExpectedEmptyLiteralConstant     = "''"
	testSingleQuoteBridgeLiteralConstant = `'"'"'`
)

// dequote reverses the single-quote encoding the way a POSIX shell would read
// it: the surrounding quotes are stripped and every bridge sequence collapses
// back into a literal single quote.
func dequote(testInstance *testing.T, quotedValue string) string {
	testInstance.Helper()
	require.True(testInstance, strings.HasPrefix(quotedValue, "'"), "quoted value must start with a single quote: %q", quotedValue)
	require.True(testInstance, strings.HasSuffix(quotedValue, "'"), "quoted value must end with a single quote: %q", quotedValue)
	innerValue := quotedValue[1 : len(quotedValue)-1]
	return strings.ReplaceAll(innerValue, testSingleQuoteBridgeLiteralConstant, "'")
}

func TestQuoteRoundTrip(testInstance *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{name: testPlainValueCaseNameConstant, value: "report.pdf"},
		{name: testEmbeddedSpaceCaseNameConstant, value: "Office Printer"},
		{name: testSingleQuoteCaseNameConstant, value: "Q2 'Report'"},
		{name: testManyQuotesCaseNameConstant, value: "'''"},
		{name: testMetacharactersCaseNameConstant, value: "$(rm -rf /) `id` \"x\" \\ ; | & *"},
		{name: testNewlineCaseNameConstant, value: "line one\nline two"},
		{name: testControlBytesCaseNameConstant, value: "tab\tbell\abackspace\b"},
		{name: testLeadingTrailingCaseNameConstant, value: "'wrapped'"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			quotedValue := shellquote.Quote(testCase.value)
			require.Equal(testInstance, testCase.value, dequote(testInstance, quotedValue))
		})
	}
}

func TestQuoteEmptyValueProducesTwoCharacterLiteral(testInstance *testing.T) {
	require.Equal(testInstance, testExpectedEmptyLiteralConstant, shellquote.Quote(""))
}

func TestQuoteUsesDoubleQuoteBridgeForSingleQuotes(testInstance *testing.T) {
	quotedValue := shellquote.Quote("it's")
	require.Equal(testInstance, `'it'"'"'s'`, quotedValue)
}

func TestQuoteNeverReturnsBareValue(testInstance *testing.T) {
	testInstance.Run(testEmptyValueCaseNameConstant, func(testInstance *testing.T) {
		require.NotEmpty(testInstance, shellquote.Quote(""))
	})
	testInstance.Run(testPlainValueCaseNameConstant, func(testInstance *testing.T) {
		require.NotEqual(testInstance, "safe", shellquote.Quote("safe"))
	})
}
