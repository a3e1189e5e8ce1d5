package utils

import (
	"io"
	"sync"
)

// flushableWriter is satisfied by buffered writers that expose Flush.
type flushableWriter interface {
	Flush() error
}

// FlushingWriter makes writes visible immediately by flushing the underlying
// writer after each write when it supports flushing. Dry-run command output
// goes through this wrapper so the synthesized command line is never held in
// a buffer when the process exits.
type FlushingWriter struct {
	underlyingWriter io.Writer
	writeMutex       sync.Mutex
}

// NewFlushingWriter wraps the provided writer. Wrapping an existing
// FlushingWriter returns it unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if alreadyFlushing, isFlushingWriter := writer.(*FlushingWriter); isFlushingWriter {
		return alreadyFlushing
	}
	return &FlushingWriter{underlyingWriter: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	writer.writeMutex.Lock()
	defer writer.writeMutex.Unlock()

	bytesWritten, writeError := writer.underlyingWriter.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushTarget, canFlush := writer.underlyingWriter.(flushableWriter); canFlush {
		if flushError := flushTarget.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
