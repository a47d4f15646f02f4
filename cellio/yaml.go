// SPDX-License-Identifier: MIT

package cellio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	spglib "github.com/crystalkit/go-spglib"
)

// document is the on-disk YAML shape of a cell:
//
//	lattice:          # three basis vectors, rows
//	  - [4.0, 0.0, 0.0]
//	  - [0.0, 4.0, 0.0]
//	  - [0.0, 0.0, 4.0]
//	positions:        # one fractional triple per atom
//	  - [0.0, 0.0, 0.0]
//	  - [0.5, 0.5, 0.5]
//	types: [1, 1]     # one species label per atom
//
// Rows decode into slices rather than arrays so shape violations surface as
// this package's errors instead of yaml's, ahead of the core invariants.
type document struct {
	Lattice   [][]float64 `yaml:"lattice"`
	Positions [][]float64 `yaml:"positions"`
	Types     []int32     `yaml:"types"`
}

// ReadYAML reads a cell document. Shape problems (lattice not 3×3, a
// positions row without exactly three components) are ErrMalformedDocument;
// index misalignment and emptiness are left to the core constructor.
func ReadYAML(r io.Reader) (*spglib.Cell, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cellio: parse yaml: %w", err)
	}

	lattice, err := latticeRows(doc.Lattice)
	if err != nil {
		return nil, err
	}
	positions := make([][3]float64, len(doc.Positions))
	for i, row := range doc.Positions {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: positions row %d has %d components", ErrMalformedDocument, i, len(row))
		}
		positions[i] = [3]float64{row[0], row[1], row[2]}
	}
	return spglib.NewCell(lattice, positions, doc.Types)
}

// WriteYAML writes the cell as a document ReadYAML accepts, exactly: the
// round trip reproduces the cell including basis orientation.
func WriteYAML(w io.Writer, c *spglib.Cell) error {
	doc := document{
		Lattice:   make([][]float64, 3),
		Positions: make([][]float64, c.NumAtoms()),
		Types:     c.Types,
	}
	for i, row := range c.Lattice {
		doc.Lattice[i] = []float64{row[0], row[1], row[2]}
	}
	for i, p := range c.Positions {
		doc.Positions[i] = []float64{p[0], p[1], p[2]}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cellio: encode yaml: %w", err)
	}
	return enc.Close()
}

func latticeRows(rows [][]float64) ([3][3]float64, error) {
	var m [3][3]float64
	if len(rows) != 3 {
		return m, fmt.Errorf("%w: lattice has %d rows, want 3", ErrMalformedDocument, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("%w: lattice row %d has %d components", ErrMalformedDocument, i, len(row))
		}
		m[i] = [3]float64{row[0], row[1], row[2]}
	}
	return m, nil
}
