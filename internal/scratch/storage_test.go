package scratch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/druck/internal/scratch"
)

const (
	testScratchPrefixConstant    = "druck"
	testScratchExtensionConstant = "txt"
	testPathAllocationCount      = 64
)

func TestNewPathProducesUniqueNames(testInstance *testing.T) {
	storage := scratch.NewOSStorageAt(testInstance.TempDir())

	allocatedPaths := map[string]struct{}{}
	for allocationIndex := 0; allocationIndex < testPathAllocationCount; allocationIndex++ {
		allocatedPath := storage.NewPath(testScratchPrefixConstant, testScratchExtensionConstant)
		_, alreadyAllocated := allocatedPaths[allocatedPath]
		require.False(testInstance, alreadyAllocated, "path %s allocated twice", allocatedPath)
		allocatedPaths[allocatedPath] = struct{}{}
	}
}

func TestNewPathShape(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	storage := scratch.NewOSStorageAt(baseDirectory)

	allocatedPath := storage.NewPath(testScratchPrefixConstant, ".txt")
	require.Equal(testInstance, baseDirectory, filepath.Dir(allocatedPath))

	allocatedName := filepath.Base(allocatedPath)
	require.True(testInstance, strings.HasPrefix(allocatedName, testScratchPrefixConstant+"-"))
	require.True(testInstance, strings.HasSuffix(allocatedName, "."+testScratchExtensionConstant))
	require.False(testInstance, strings.Contains(allocatedName, ".."), "extension separator must not repeat: %s", allocatedName)
}

func TestWriteAllStoresBytesVerbatim(testInstance *testing.T) {
	storage := scratch.NewOSStorageAt(testInstance.TempDir())
	allocatedPath := storage.NewPath(testScratchPrefixConstant, testScratchExtensionConstant)

	contentBytes := []byte("hello\nworld")
	require.NoError(testInstance, storage.WriteAll(allocatedPath, contentBytes))

	storedBytes, readError := os.ReadFile(allocatedPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, contentBytes, storedBytes)
}

func TestWriteAllReportsFailure(testInstance *testing.T) {
	storage := scratch.NewOSStorageAt(testInstance.TempDir())
	missingDirectoryPath := filepath.Join(testInstance.TempDir(), "missing", "scratch.txt")

	writeError := storage.WriteAll(missingDirectoryPath, []byte("content"))
	require.Error(testInstance, writeError)
}

func TestNewOSStorageAtFallsBackToTempDir(testInstance *testing.T) {
	storage := scratch.NewOSStorageAt("  ")
	allocatedPath := storage.NewPath(testScratchPrefixConstant, testScratchExtensionConstant)
	require.Equal(testInstance, os.TempDir(), filepath.Dir(allocatedPath))
}
