// Package samplefile reads, edits and lists .samples2 files. Each
// operation materializes the whole file in memory: read, optionally
// mutate, then rewrite. There is no streaming and no coordination of
// concurrent access to the same file.
package samplefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/minetrack/sampletool/pkg/codec"
)

// Read loads every sample record from the file at path.
func Read(path string) ([]codec.Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer file.Close()

	return codec.DecodeSampleList(bufio.NewReader(file))
}

// Write replaces the file at path with the encoding of samples. The list
// is encoded in memory first, so an encode failure leaves the old file
// untouched; success is reported only after the write has been fsynced.
func Write(path string, samples []codec.Sample) error {
	var buf bytes.Buffer
	if err := codec.EncodeSampleList(&buf, samples); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open sample file for writing: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync sample file: %w", err)
	}
	return file.Close()
}

// List decodes the file at path and writes one line per record, in file
// order, to w. The file is never modified.
func List(path string, w io.Writer) error {
	samples, err := Read(path)
	if err != nil {
		return err
	}
	for _, sample := range samples {
		if _, err := fmt.Fprintln(w, sample); err != nil {
			return err
		}
	}
	return nil
}
