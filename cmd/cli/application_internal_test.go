package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/druck/internal/printjob"
)

const (
	internalTestConfigurationFileNameConstant = "config.yaml"
	internalTestConfigurationContentConstant  = "common:\n  log_level: warn\n  log_format: console\ntools:\n  print:\n    tool: lpr\n    destination: Accounting\n    copies: 2\n"
	internalTestDryRunOutputConstant          = "lp -d 'Office Printer' 'report.pdf'\n"
)

func TestInitializeConfigurationAppliesEmbeddedDefaults(t *testing.T) {
	application := NewApplication()
	application.rootCommand.SetContext(context.Background())

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "info", application.configuration.Common.LogLevel)
	require.Equal(t, "structured", application.configuration.Common.LogFormat)
	require.Equal(t, printjob.DialectLP, application.configuration.Tools.Print.Tool)
	require.False(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationReadsConfigurationFile(t *testing.T) {
	temporaryDirectory := t.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, internalTestConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte(internalTestConfigurationContentConstant), 0o600))

	application := NewApplication()
	application.rootCommand.SetContext(context.Background())
	application.configurationFilePath = configurationPath

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "warn", application.configuration.Common.LogLevel)
	require.Equal(t, printjob.DialectLPR, application.configuration.Tools.Print.Tool)
	require.Equal(t, "Accounting", application.configuration.Tools.Print.Destination)
	require.Equal(t, 2, application.configuration.Tools.Print.Copies)
	require.True(t, application.humanReadableLoggingEnabled())
}

func TestPersistentFlagsOverrideConfiguredLogging(t *testing.T) {
	application := NewApplication()
	application.rootCommand.SetContext(context.Background())

	require.NoError(t, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
	require.NoError(t, application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, "console"))

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "debug", application.configuration.Common.LogLevel)
	require.Equal(t, "console", application.configuration.Common.LogFormat)
	require.True(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationRejectsUnknownLogLevel(t *testing.T) {
	application := NewApplication()
	application.rootCommand.SetContext(context.Background())

	require.NoError(t, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "verbose"))

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.Error(t, initializationError)
}

func TestApplicationExecutesPrintPreview(t *testing.T) {
	application := NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetContext(context.Background())
	application.rootCommand.SetArgs([]string{"print", "--dry-run", "-d", "Office Printer", "report.pdf"})

	executionError := application.Execute()
	require.NoError(t, executionError)
	require.Equal(t, internalTestDryRunOutputConstant, outputBuffer.String())
}

func TestRootCommandWithoutArgumentsShowsHelp(t *testing.T) {
	application := NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetContext(context.Background())
	application.rootCommand.SetArgs([]string{})

	executionError := application.Execute()
	require.NoError(t, executionError)
	require.Contains(t, outputBuffer.String(), applicationNameConstant)
}

func TestFlushLoggerToleratesMissingLogger(t *testing.T) {
	application := &Application{}
	require.NoError(t, application.flushLogger())
}
