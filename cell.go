// SPDX-License-Identifier: MIT

package spglib

/*
#include <spglib.h>
*/
import "C"

import "unsafe"

// Cell describes a crystalline structure: three lattice basis vectors, one
// fractional coordinate triple per atom, and one integer species label per
// atom. Labels are caller-chosen and carry no meaning beyond equality: atoms
// with equal labels are the same species.
//
// A Cell owns its data outright; no engine memory is ever attached to it.
// The in-place transforms below hand the cell's buffers to the engine for the
// duration of a single call and nothing more.
type Cell struct {
	// Lattice holds the basis vectors as rows.
	Lattice [3][3]float64

	// Positions holds fractional atomic coordinates, index-aligned with Types.
	Positions [][3]float64

	// Types holds the species label of each atom.
	Types []int32
}

// NewCell copies the given data into a fresh Cell. The structural invariants
// are enforced here, before any engine call can see the cell: Positions and
// Types must be index-aligned and describe at least one atom.
func NewCell(lattice [3][3]float64, positions [][3]float64, types []int32) (*Cell, error) {
	if len(positions) != len(types) {
		return nil, ErrAtomCountMismatch
	}
	if len(positions) == 0 {
		return nil, ErrNoAtoms
	}
	c := &Cell{
		Lattice:   lattice,
		Positions: make([][3]float64, len(positions)),
		Types:     make([]int32, len(types)),
	}
	copy(c.Positions, positions)
	copy(c.Types, types)
	return c, nil
}

// NumAtoms returns the number of atoms in the cell.
func (c *Cell) NumAtoms() int { return len(c.Positions) }

// Standardize replaces the cell with its standardized setting, in place.
// toPrimitive additionally converts to a primitive cell; noIdealize keeps the
// basis orientation of the input instead of idealizing it. symprec is the
// absolute tolerance the engine uses for coincidence checks and must be chosen
// relative to the scale of the lattice.
//
// Standardization may shrink the atom count (primitive conversion), never grow
// it, so the cell's own buffers serve as the engine's output buffers. On
// ErrCellStandardizationFailed those buffers may have been partially written:
// the cell is indeterminate and must be discarded, not inspected. Cells
// assembled by hand are re-checked against the structural invariants first.
func (c *Cell) Standardize(toPrimitive, noIdealize bool, symprec float64) error {
	if c == nil {
		return ErrNilCell
	}
	if len(c.Positions) != len(c.Types) {
		return ErrAtomCountMismatch
	}
	if len(c.Positions) == 0 {
		return ErrNoAtoms
	}
	n := C.spg_standardize_cell(
		(*[3]C.double)(unsafe.Pointer(&c.Lattice[0])),
		(*[3]C.double)(unsafe.Pointer(&c.Positions[0])),
		(*C.int)(unsafe.Pointer(&c.Types[0])),
		C.int(len(c.Positions)),
		cbool(toPrimitive),
		cbool(noIdealize),
		C.double(symprec),
	)
	if n == 0 {
		return ErrCellStandardizationFailed
	}
	c.Positions = c.Positions[:n]
	c.Types = c.Types[:n]
	return nil
}

// DelaunayReduce replaces Lattice with its Delaunay-reduced basis, in place.
// Positions and Types are untouched; callers that need the original geometry
// must re-express fractional coordinates against the reduced basis themselves.
func (c *Cell) DelaunayReduce(symprec float64) error {
	if c == nil {
		return ErrNilCell
	}
	ok := C.spg_delaunay_reduce(
		(*[3]C.double)(unsafe.Pointer(&c.Lattice[0])),
		C.double(symprec),
	)
	if ok == 0 {
		return ErrDelaunayFailed
	}
	return nil
}

// NiggliReduce replaces Lattice with its Niggli-reduced basis, in place.
// eps plays the same role symprec does elsewhere.
func (c *Cell) NiggliReduce(eps float64) error {
	if c == nil {
		return ErrNilCell
	}
	ok := C.spg_niggli_reduce(
		(*[3]C.double)(unsafe.Pointer(&c.Lattice[0])),
		C.double(eps),
	)
	if ok == 0 {
		return ErrNiggliFailed
	}
	return nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
