// SPDX-License-Identifier: MIT

package cellio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spglib "github.com/crystalkit/go-spglib"
	"github.com/crystalkit/go-spglib/cellio"
)

const bccYAML = `lattice:
  - [4.0, 0.0, 0.0]
  - [0.0, 4.0, 0.0]
  - [0.0, 0.0, 4.0]
positions:
  - [0.0, 0.0, 0.0]
  - [0.5, 0.5, 0.5]
types: [1, 1]
`

// TestReadYAML_BCC reads the literal cell document and checks the cell is
// taken over exactly, including basis orientation.
func TestReadYAML_BCC(t *testing.T) {
	cell, err := cellio.ReadYAML(strings.NewReader(bccYAML))
	require.NoError(t, err)

	assert.Equal(t, [3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, cell.Lattice)
	assert.Equal(t, [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}}, cell.Positions)
	assert.Equal(t, []int32{1, 1}, cell.Types)
}

// TestReadYAML_Shape rejects documents whose rows have the wrong arity.
func TestReadYAML_Shape(t *testing.T) {
	twoRows := `lattice:
  - [4.0, 0.0, 0.0]
  - [0.0, 4.0, 0.0]
positions:
  - [0.0, 0.0, 0.0]
types: [1]
`
	_, err := cellio.ReadYAML(strings.NewReader(twoRows))
	assert.ErrorIs(t, err, cellio.ErrMalformedDocument, "2-row lattice")

	shortRow := `lattice:
  - [4.0, 0.0]
  - [0.0, 4.0, 0.0]
  - [0.0, 0.0, 4.0]
positions:
  - [0.0, 0.0, 0.0]
types: [1]
`
	_, err = cellio.ReadYAML(strings.NewReader(shortRow))
	assert.ErrorIs(t, err, cellio.ErrMalformedDocument, "2-component lattice row")

	longPosition := `lattice:
  - [4.0, 0.0, 0.0]
  - [0.0, 4.0, 0.0]
  - [0.0, 0.0, 4.0]
positions:
  - [0.0, 0.0, 0.0, 0.0]
types: [1]
`
	_, err = cellio.ReadYAML(strings.NewReader(longPosition))
	assert.ErrorIs(t, err, cellio.ErrMalformedDocument, "4-component position")
}

// TestReadYAML_CoreInvariants verifies that well-shaped documents violating
// the structural invariants surface the core sentinels, not cellio's.
func TestReadYAML_CoreInvariants(t *testing.T) {
	mismatched := `lattice:
  - [4.0, 0.0, 0.0]
  - [0.0, 4.0, 0.0]
  - [0.0, 0.0, 4.0]
positions:
  - [0.0, 0.0, 0.0]
  - [0.5, 0.5, 0.5]
types: [1]
`
	_, err := cellio.ReadYAML(strings.NewReader(mismatched))
	assert.ErrorIs(t, err, spglib.ErrAtomCountMismatch)

	empty := `lattice:
  - [4.0, 0.0, 0.0]
  - [0.0, 4.0, 0.0]
  - [0.0, 0.0, 4.0]
positions: []
types: []
`
	_, err = cellio.ReadYAML(strings.NewReader(empty))
	assert.ErrorIs(t, err, spglib.ErrNoAtoms)
}

// TestReadYAML_Garbage verifies that syntactically broken input reports a
// parse error instead of a zero cell.
func TestReadYAML_Garbage(t *testing.T) {
	_, err := cellio.ReadYAML(strings.NewReader("lattice: [:::"))
	assert.Error(t, err)
}

// TestWriteYAML_RoundTrip verifies the write-read round trip is exact.
func TestWriteYAML_RoundTrip(t *testing.T) {
	cell, err := spglib.NewCell(
		[3][3]float64{{-2, 2, 2}, {2, -2, 2}, {2, 2, -2}},
		[][3]float64{{0, 0, 0}, {0.25, 0.5, 0.75}},
		[]int32{1, 2},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cellio.WriteYAML(&buf, cell))

	back, err := cellio.ReadYAML(&buf)
	require.NoError(t, err)

	assert.Equal(t, cell.Lattice, back.Lattice)
	assert.Equal(t, cell.Positions, back.Positions)
	assert.Equal(t, cell.Types, back.Types)
}
