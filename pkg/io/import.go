package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/markdown"
	"github.com/matzehuels/roffman/pkg/roff"
)

// Source formats understood by [Read] and [Import].
const (
	FormatTOML     = "toml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formats lists the supported source formats.
var Formats = []string{FormatTOML, FormatJSON, FormatMarkdown}

// ReadTOML decodes a TOML manifest from r.
//
// Keys that do not belong to the schema are rejected so that typos do not
// silently drop content. The returned document has not been validated; call
// [roff.Document.Validate] or render it to check page structure.
func ReadTOML(r io.Reader) (roff.Document, error) {
	var m manifest
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return roff.Document{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return roff.Document{}, invalid(undecoded[0].String(), "unknown key")
	}
	return m.document()
}

// ReadJSON decodes a JSON manifest from r. The schema is the same as for
// [ReadTOML] and unknown fields are rejected.
func ReadJSON(r io.Reader) (roff.Document, error) {
	var m manifest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return roff.Document{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode JSON")
	}
	return m.document()
}

// Read decodes a document in the given format. Markdown input uses opts for
// the page header; opts is ignored for manifests.
func Read(r io.Reader, format string, opts markdown.Options) (roff.Document, error) {
	switch format {
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatMarkdown:
		data, err := io.ReadAll(r)
		if err != nil {
			return roff.Document{}, errors.Wrap(errors.ErrCodeInternal, err, "read markdown")
		}
		return markdown.Convert(data, opts)
	}
	return roff.Document{}, errors.ValidateFormat(format, Formats...)
}

// ImportTOML reads a TOML manifest file.
func ImportTOML(path string) (roff.Document, error) {
	return importFile(path, FormatTOML)
}

// ImportJSON reads a JSON manifest file.
func ImportJSON(path string) (roff.Document, error) {
	return importFile(path, FormatJSON)
}

// Import reads a document from path, choosing the format by extension.
func Import(path string) (roff.Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return roff.Document{}, err
	}
	return importFile(path, format)
}

// FormatFromPath maps a file extension to a source format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (expected .toml, .json, .md)", filepath.Base(path))
}

func importFile(path, format string) (roff.Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return roff.Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return roff.Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format, markdown.OptionsFromFilename(path))
}
