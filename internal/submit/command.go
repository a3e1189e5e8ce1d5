package submit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/druck/internal/execshell"
	"github.com/temirov/druck/internal/printjob"
	"github.com/temirov/druck/internal/scratch"
	"github.com/temirov/druck/internal/ui"
	"github.com/temirov/druck/internal/utils"
	flagutils "github.com/temirov/druck/internal/utils/flags"
)

const (
	commandUseConstant              = "print [file]"
	commandShortDescriptionConstant = "Submit a print job via lp or lpr"
	commandLongDescriptionConstant  = "print synthesizes a shell-safe lp or lpr command line for the described job and executes it through a POSIX shell. Content comes from a positional file argument or from --text, which is written to a scratch file first."
	commandExampleConstant          = "druck print --destination 'Office Printer' --copies 2 --option sides=two-sided-long-edge report.pdf"

	destinationFlagNameConstant  = "destination"
	destinationFlagShorthand     = "d"
	destinationFlagUsageConstant = "Target printer or queue name."
	copiesFlagNameConstant       = "copies"
	copiesFlagShorthand          = "n"
	copiesFlagUsageConstant      = "Number of copies to print."
	titleFlagNameConstant        = "title"
	titleFlagShorthand           = "t"
	titleFlagUsageConstant       = "Job title shown in the queue."
	optionFlagNameConstant       = "option"
	optionFlagShorthand          = "o"
	optionFlagUsageConstant      = "Backend key=value job option; repeatable."
	textFlagNameConstant         = "text"
	textFlagUsageConstant        = "Inline text to print instead of a file."
	lprFlagNameConstant          = "lpr"
	lprFlagUsageConstant         = "Submit through lpr instead of lp."
	dryRunFlagNameConstant       = "dry-run"
	dryRunFlagUsageConstant      = "Print the synthesized command line without executing it."

	missingContentMessageConstant   = "provide a file argument or --text"
	ambiguousContentMessageConstant = "a file argument and --text are mutually exclusive"
	malformedOptionTemplateConstant = "job option %q is not of the form key=value"
	tooManyArgumentsMessageConstant = "at most one file argument is accepted"
	loggerMissingMessageConstant    = "logger not configured for print command"
	jobOptionAssignmentConstant     = "="
	jobOptionSplitPartsConstant     = 2
)

// ErrMissingContent indicates neither a file argument nor inline text was supplied.
var ErrMissingContent = errors.New(missingContentMessageConstant)

// ErrAmbiguousContent indicates both a file argument and inline text were supplied.
var ErrAmbiguousContent = errors.New(ambiguousContentMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandConfiguration stores persisted defaults for the print command.
type CommandConfiguration struct {
	Destination string               `mapstructure:"destination"`
	Copies      int                  `mapstructure:"copies"`
	Title       string               `mapstructure:"title"`
	Tool        printjob.ToolDialect `mapstructure:"tool"`
	Options     map[string]string    `mapstructure:"options"`
}

// CommandBuilder assembles the print command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	Executor                     ShellExecutor
	Storage                      scratch.Storage
}

type commandFlagValues struct {
	destination string
	copies      int
	title       string
	options     []string
	text        string
	useLPR      bool
	dryRun      bool
}

// Build constructs the print command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	flagValues := &commandFlagValues{}

	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, flagValues)
		},
	}

	command.Flags().StringVarP(&flagValues.destination, destinationFlagNameConstant, destinationFlagShorthand, "", destinationFlagUsageConstant)
	command.Flags().IntVarP(&flagValues.copies, copiesFlagNameConstant, copiesFlagShorthand, 0, copiesFlagUsageConstant)
	command.Flags().StringVarP(&flagValues.title, titleFlagNameConstant, titleFlagShorthand, "", titleFlagUsageConstant)
	command.Flags().StringArrayVarP(&flagValues.options, optionFlagNameConstant, optionFlagShorthand, nil, optionFlagUsageConstant)
	command.Flags().StringVar(&flagValues.text, textFlagNameConstant, "", textFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), &flagValues.useLPR, lprFlagNameConstant, "", false, lprFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), &flagValues.dryRun, dryRunFlagNameConstant, "", false, dryRunFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, flagValues *commandFlagValues) error {
	jobOptions, optionsError := builder.resolveJobOptions(command, flagValues)
	if optionsError != nil {
		return optionsError
	}

	content, contentError := resolveContent(command, arguments, flagValues)
	if contentError != nil {
		return contentError
	}

	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	if flagValues.dryRun {
		commandLine, buildError := service.BuildCommand(jobOptions, content)
		if buildError != nil {
			return buildError
		}
		outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
		_, writeError := fmt.Fprintln(outputWriter, commandLine)
		return writeError
	}

	return service.Submit(command.Context(), jobOptions, content)
}

func (builder *CommandBuilder) resolveJobOptions(command *cobra.Command, flagValues *commandFlagValues) (printjob.JobOptions, error) {
	configuration := builder.resolveConfiguration()

	dialect := configuration.Tool
	if flagValues.useLPR {
		dialect = printjob.DialectLPR
	}

	optionsBuilder := printjob.NewOptionsBuilder().
		Dialect(dialect).
		Destination(configuration.Destination).
		Copies(configuration.Copies).
		Title(configuration.Title).
		JobOptions(configuration.Options)

	if command.Flags().Changed(destinationFlagNameConstant) {
		optionsBuilder.Destination(flagValues.destination)
	}
	if command.Flags().Changed(copiesFlagNameConstant) {
		optionsBuilder.Copies(flagValues.copies)
	}
	if command.Flags().Changed(titleFlagNameConstant) {
		optionsBuilder.Title(flagValues.title)
	}

	for _, rawOption := range flagValues.options {
		optionParts := strings.SplitN(rawOption, jobOptionAssignmentConstant, jobOptionSplitPartsConstant)
		if len(optionParts) != jobOptionSplitPartsConstant || len(optionParts[0]) == 0 {
			return printjob.JobOptions{}, fmt.Errorf(malformedOptionTemplateConstant, rawOption)
		}
		optionsBuilder.JobOption(optionParts[0], optionParts[1])
	}

	return optionsBuilder.Build(), nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	storage := builder.Storage
	if storage == nil {
		storage = scratch.NewOSStorage()
	}

	executor := builder.Executor
	if executor == nil {
		logger := builder.resolveLogger()
		if logger == nil {
			return nil, errors.New(loggerMissingMessageConstant)
		}

		var observers []execshell.CommandEventObserver
		if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
			observers = append(observers, ui.NewConsoleSubmissionEventLogger(logger))
		}

		shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSShellRunner(), observers...)
		if executorError != nil {
			return nil, executorError
		}
		executor = shellExecutor
	}

	return NewService(ServiceDependencies{Executor: executor, Storage: storage})
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return nil
	}
	return builder.LoggerProvider()
}

func resolveContent(command *cobra.Command, arguments []string, flagValues *commandFlagValues) (printjob.Content, error) {
	textSupplied := command.Flags().Changed(textFlagNameConstant)

	switch {
	case len(arguments) > 1:
		return printjob.Content{}, errors.New(tooManyArgumentsMessageConstant)
	case textSupplied && len(arguments) > 0:
		return printjob.Content{}, ErrAmbiguousContent
	case textSupplied:
		return printjob.TextContent(flagValues.text), nil
	case len(arguments) == 1:
		return printjob.FileContent(arguments[0]), nil
	default:
		return printjob.Content{}, ErrMissingContent
	}
}
