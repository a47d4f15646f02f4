// SPDX-License-Identifier: MIT

package spglib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spglib "github.com/crystalkit/go-spglib"
)

// TestNewCell_RejectsLengthMismatch verifies that positions and types of
// different lengths never reach the engine.
func TestNewCell_RejectsLengthMismatch(t *testing.T) {
	_, err := spglib.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int32{1},
	)
	assert.ErrorIs(t, err, spglib.ErrAtomCountMismatch, "2 positions vs 1 type must be rejected")
}

// TestNewCell_RejectsEmpty verifies that a cell without atoms is rejected.
func TestNewCell_RejectsEmpty(t *testing.T) {
	_, err := spglib.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		nil,
		nil,
	)
	assert.ErrorIs(t, err, spglib.ErrNoAtoms, "zero atoms must be rejected")
}

// TestNewCell_CopiesInputs verifies that the constructor detaches from the
// caller's slices, so later caller-side mutation cannot corrupt the cell.
func TestNewCell_CopiesInputs(t *testing.T) {
	positions := [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}}
	types := []int32{1, 1}

	cell, err := spglib.NewCell([3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, positions, types)
	require.NoError(t, err)

	positions[1] = [3]float64{9, 9, 9}
	types[1] = 42

	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, cell.Positions[1], "positions must be copied")
	assert.Equal(t, int32(1), cell.Types[1], "types must be copied")
	assert.Equal(t, 2, cell.NumAtoms())
}

// TestCell_StandardizeToPrimitive_BCC verifies the canonical fixture: the
// conventional body-centered cubic cell collapses to its one-atom primitive
// cell with the expected basis.
func TestCell_StandardizeToPrimitive_BCC(t *testing.T) {
	cell := bccConventional(t)

	require.NoError(t, cell.Standardize(true, false, 1e-5))

	assertLatticeInDelta(t, [3][3]float64{{-2, 2, 2}, {2, -2, 2}, {2, 2, -2}}, cell.Lattice, 1e-10)
	assert.Equal(t, 1, cell.NumAtoms(), "primitive BCC holds one atom")
	assert.Equal(t, []int32{1}, cell.Types)
	assertVecInDelta(t, [3]float64{0, 0, 0}, cell.Positions[0], 1e-10)
}

// TestCell_Standardize_Conventional verifies that standardizing an already
// conventional cell keeps its atom count and idealized basis.
func TestCell_Standardize_Conventional(t *testing.T) {
	cell := bccConventional(t)

	require.NoError(t, cell.Standardize(false, false, 1e-5))

	assert.Equal(t, 2, cell.NumAtoms())
	assertLatticeInDelta(t, [3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, cell.Lattice, 1e-10)
}

// TestCell_Standardize_Idempotent verifies that a second primitive
// standardization leaves the cell unchanged.
func TestCell_Standardize_Idempotent(t *testing.T) {
	cell := bccConventional(t)
	require.NoError(t, cell.Standardize(true, false, 1e-5))
	first := cell.Lattice

	require.NoError(t, cell.Standardize(true, false, 1e-5))

	assertLatticeInDelta(t, first, cell.Lattice, 1e-10)
	assert.Equal(t, 1, cell.NumAtoms())
}

// TestCell_Standardize_Validation covers the structural re-checks for cells
// built as struct literals instead of through NewCell.
func TestCell_Standardize_Validation(t *testing.T) {
	empty := &spglib.Cell{Lattice: [3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}}
	assert.ErrorIs(t, empty.Standardize(false, false, 1e-5), spglib.ErrNoAtoms)

	ragged := bccConventional(t)
	ragged.Types = ragged.Types[:1]
	assert.ErrorIs(t, ragged.Standardize(false, false, 1e-5), spglib.ErrAtomCountMismatch)
}

// TestCell_NilReceiver verifies the engine-backed operations reject a nil
// cell with a sentinel instead of dereferencing it.
func TestCell_NilReceiver(t *testing.T) {
	var cell *spglib.Cell
	assert.ErrorIs(t, cell.Standardize(false, false, 1e-5), spglib.ErrNilCell)
	assert.ErrorIs(t, cell.NiggliReduce(1e-5), spglib.ErrNilCell)
	assert.ErrorIs(t, cell.DelaunayReduce(1e-5), spglib.ErrNilCell)
}

// TestCell_NiggliReduce_AlreadyReduced verifies that a cubic basis survives
// Niggli reduction untouched.
func TestCell_NiggliReduce_AlreadyReduced(t *testing.T) {
	cell := bccConventional(t)

	require.NoError(t, cell.NiggliReduce(1e-5))

	assertLatticeInDelta(t, [3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, cell.Lattice, 1e-10)
}

// TestCell_NiggliReduce_SkewedBasis verifies that reducing a deliberately
// skewed basis preserves the cell volume and shortens the long vector back to
// the cubic edge length.
func TestCell_NiggliReduce_SkewedBasis(t *testing.T) {
	cell, err := spglib.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {4, 4, 4}},
		[][3]float64{{0, 0, 0}},
		[]int32{1},
	)
	require.NoError(t, err)
	volume := math.Abs(det3(cell.Lattice))

	require.NoError(t, cell.NiggliReduce(1e-5))

	assert.InDelta(t, volume, math.Abs(det3(cell.Lattice)), 1e-8, "reduction preserves volume")
	for i, row := range cell.Lattice {
		norm := math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2])
		assert.InDelta(t, 4.0, norm, 1e-8, "basis vector %d must reduce to edge length", i)
	}
}

// TestCell_DelaunayReduce_SkewedBasis verifies volume preservation and vector
// shortening under Delaunay reduction of the same skewed basis.
func TestCell_DelaunayReduce_SkewedBasis(t *testing.T) {
	cell, err := spglib.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {4, 4, 4}},
		[][3]float64{{0, 0, 0}},
		[]int32{1},
	)
	require.NoError(t, err)
	volume := math.Abs(det3(cell.Lattice))

	require.NoError(t, cell.DelaunayReduce(1e-5))

	assert.InDelta(t, volume, math.Abs(det3(cell.Lattice)), 1e-8, "reduction preserves volume")
	for i, row := range cell.Lattice {
		norm := math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2])
		assert.InDelta(t, 4.0, norm, 1e-8, "basis vector %d must reduce to edge length", i)
	}
}

func assertVecInDelta(t *testing.T, want, got [3]float64, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d", i)
	}
}
