package printjob_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/druck/internal/printjob"
)

func TestOptionsBuilderAssemblesAllFields(testInstance *testing.T) {
	jobOptions := printjob.NewOptionsBuilder().
		Destination("Accounting").
		Copies(3).
		Title("Ledger").
		JobOption("media", "na_letter_8.5x11in").
		Dialect(printjob.DialectLPR).
		Build()

	require.Equal(testInstance, "Accounting", jobOptions.Destination)
	require.Equal(testInstance, 3, jobOptions.Copies)
	require.Equal(testInstance, "Ledger", jobOptions.Title)
	require.Equal(testInstance, map[string]string{"media": "na_letter_8.5x11in"}, jobOptions.JobOptions)
	require.Equal(testInstance, printjob.DialectLPR, jobOptions.Dialect)
}

func TestOptionsBuilderDefaultsToLPDialect(testInstance *testing.T) {
	jobOptions := printjob.NewOptionsBuilder().Build()
	require.Equal(testInstance, printjob.DialectLP, jobOptions.Dialect)
	require.Empty(testInstance, jobOptions.Destination)
	require.Zero(testInstance, jobOptions.Copies)
}

func TestOptionsBuilderDestinationIf(testInstance *testing.T) {
	configuredDestination := "Front Desk"

	withDestination := printjob.NewOptionsBuilder().DestinationIf(&configuredDestination).Build()
	require.Equal(testInstance, configuredDestination, withDestination.Destination)

	withoutDestination := printjob.NewOptionsBuilder().DestinationIf(nil).Build()
	require.Empty(testInstance, withoutDestination.Destination)
}

func TestOptionsBuilderClearOperations(testInstance *testing.T) {
	jobOptions := printjob.NewOptionsBuilder().
		Destination("Accounting").
		Copies(3).
		Title("Ledger").
		ClearDestination().
		ClearCopies().
		ClearTitle().
		Build()

	require.Empty(testInstance, jobOptions.Destination)
	require.Zero(testInstance, jobOptions.Copies)
	require.Empty(testInstance, jobOptions.Title)
}

func TestOptionsBuilderJobOptionsReplacesMapWithCopy(testInstance *testing.T) {
	sourceOptions := map[string]string{"sides": "one-sided"}
	jobOptions := printjob.NewOptionsBuilder().
		JobOption("media", "a4").
		JobOptions(sourceOptions).
		Build()

	require.Equal(testInstance, map[string]string{"sides": "one-sided"}, jobOptions.JobOptions)

	sourceOptions["sides"] = "two-sided-long-edge"
	require.Equal(testInstance, "one-sided", jobOptions.JobOptions["sides"])
}
