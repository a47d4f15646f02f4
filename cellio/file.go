// SPDX-License-Identifier: MIT

package cellio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	spglib "github.com/crystalkit/go-spglib"
)

// ReadFile reads a cell from path, dispatching on the extension: .cif, .yaml
// and .yml are recognized, anything else is ErrUnknownExtension. Options
// apply to the formats that take them.
func ReadFile(path string, opts ...Option) (*spglib.Cell, error) {
	var read func(io.Reader) (*spglib.Cell, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cif":
		read = func(r io.Reader) (*spglib.Cell, error) { return ReadCIF(r, opts...) }
	case ".yaml", ".yml":
		read = ReadYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cellio: %w", err)
	}
	defer f.Close()
	cell, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cell, nil
}

// WriteFile writes the cell to path in the format its extension names. The
// extension is checked before the file is created, so an unknown one leaves
// nothing behind.
func WriteFile(path string, c *spglib.Cell, opts ...Option) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cif":
		write = func(w io.Writer) error { return WriteCIF(w, c, opts...) }
	case ".yaml", ".yml":
		write = func(w io.Writer) error { return WriteYAML(w, c) }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cellio: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
