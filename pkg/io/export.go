package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/roff"
)

// WriteRoff renders doc and writes the roff source to w.
// Nothing is written when the document is invalid.
func WriteRoff(doc roff.Document, w io.Writer) error {
	src, err := doc.Render()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, src); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportRoff renders doc into a file at path.
// The file is only created once rendering has succeeded.
func ExportRoff(doc roff.Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	src, err := doc.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteTOML encodes doc as a TOML manifest.
// The output can be re-imported with [ReadTOML].
func WriteTOML(doc roff.Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(fromDocument(doc)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTOML writes doc to a TOML manifest file at path.
// This is a convenience wrapper around [WriteTOML] for file-based output.
func ExportTOML(doc roff.Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTOML(doc, f)
}
