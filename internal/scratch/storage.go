package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	scratchFileNameTemplateConstant   = "%s-%s.%s"
	scratchFilePermissionsConstant    = 0o600
	scratchWriteErrorTemplateConstant = "unable to write scratch file %s: %w"
	extensionSeparatorConstant        = "."
)

// Storage abstracts scratch-file allocation and writing so command
// construction can materialize inline content without owning filesystem
// policy.
type Storage interface {
	// NewPath returns a fresh path that no prior or concurrent NewPath call
	// has returned.
	NewPath(prefix string, extension string) string
	// WriteAll writes data to path verbatim, creating the file.
	WriteAll(path string, data []byte) error
}

// OSStorage allocates scratch files under a base directory using
// collision-resistant random names.
type OSStorage struct {
	baseDirectory string
}

// NewOSStorage constructs storage rooted at the system temporary directory.
func NewOSStorage() *OSStorage {
	return &OSStorage{baseDirectory: os.TempDir()}
}

// NewOSStorageAt constructs storage rooted at the provided directory.
func NewOSStorageAt(baseDirectory string) *OSStorage {
	trimmedBaseDirectory := strings.TrimSpace(baseDirectory)
	if len(trimmedBaseDirectory) == 0 {
		return NewOSStorage()
	}
	return &OSStorage{baseDirectory: trimmedBaseDirectory}
}

// NewPath returns a unique scratch path combining the prefix, a random UUID,
// and the extension. Random names keep concurrent submissions from ever
// targeting the same file.
func (storage *OSStorage) NewPath(prefix string, extension string) string {
	trimmedExtension := strings.TrimPrefix(strings.TrimSpace(extension), extensionSeparatorConstant)
	scratchFileName := fmt.Sprintf(scratchFileNameTemplateConstant, prefix, uuid.NewString(), trimmedExtension)
	return filepath.Join(storage.baseDirectory, scratchFileName)
}

// WriteAll writes data to path with owner-only permissions.
func (storage *OSStorage) WriteAll(path string, data []byte) error {
	writeError := os.WriteFile(path, data, scratchFilePermissionsConstant)
	if writeError != nil {
		return fmt.Errorf(scratchWriteErrorTemplateConstant, path, writeError)
	}
	return nil
}
