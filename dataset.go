// SPDX-License-Identifier: MIT

package spglib

/*
#include <spglib.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// Dataset is the complete result of one symmetry analysis: the identified
// space group, every symmetry operation, per-atom equivalence tables, the
// primitive-cell mapping, and the standardized cell. It is a fully owned
// snapshot with no remaining tie to engine memory, so it outlives the Cell it
// was computed from and needs no teardown.
//
// Length invariants: Rotations and Translations have NumOperations elements;
// Wyckoffs, EquivalentAtoms, CrystallographicOrbits and MappingToPrimitive
// have NumAtoms elements (one per atom of the analyzed cell); StdTypes,
// StdPositions and StdMappingToPrimitive have NumStdAtoms elements.
type Dataset struct {
	// SpacegroupNumber is the space-group type number from the International
	// Tables for Crystallography (1..230).
	SpacegroupNumber int

	// HallNumber is the serial number of the matched setting (1..530).
	HallNumber int

	// InternationalSymbol is the Hermann-Mauguin space-group symbol.
	InternationalSymbol string

	// HallSymbol is the Hall space-group symbol.
	HallSymbol string

	// Choice identifies the unique-axis, setting, or cell choice.
	Choice string

	// TransformationMatrix relates the input cell to the standardized setting.
	TransformationMatrix [3][3]float64

	// OriginShift is the origin shift belonging to TransformationMatrix.
	OriginShift [3]float64

	// NumOperations is the number of symmetry operations.
	NumOperations int

	// Rotations holds the rotation part of each symmetry operation.
	Rotations [][3][3]int32

	// Translations holds the translation part of each symmetry operation,
	// index-aligned with Rotations.
	Translations [][3]float64

	// NumAtoms is the atom count of the analyzed cell.
	NumAtoms int

	// Wyckoffs holds one Wyckoff-letter code per atom (0 encodes "a").
	Wyckoffs []int32

	// SiteSymmetrySymbols is declared for completeness but stays empty: the
	// engine's analysis call does not populate it. Known gap, not an error.
	SiteSymmetrySymbols []string

	// EquivalentAtoms maps each atom to the representative of its
	// symmetry-equivalence class under the identified group.
	EquivalentAtoms []int32

	// CrystallographicOrbits is the same mapping determined with the
	// primitive cell's symmetry.
	CrystallographicOrbits []int32

	// PrimitiveLattice holds non-standardized primitive basis vectors found
	// inside the input cell.
	PrimitiveLattice [3][3]float64

	// MappingToPrimitive maps each atom of the analyzed cell to an atom index
	// of the primitive cell.
	MappingToPrimitive []int32

	// NumStdAtoms is the atom count of the standardized cell. It is
	// independent of NumAtoms and generally differs from it.
	NumStdAtoms int

	// StdLattice holds the standardized cell's basis vectors.
	StdLattice [3][3]float64

	// StdTypes holds the standardized cell's species labels.
	StdTypes []int32

	// StdPositions holds the standardized cell's fractional coordinates.
	StdPositions [][3]float64

	// StdRotationMatrix rotates the pre-idealization standardized cell onto
	// the idealized one.
	StdRotationMatrix [3][3]float64

	// StdMappingToPrimitive maps standardized-cell atoms to primitive-cell
	// atom indices.
	StdMappingToPrimitive []int32

	// PointgroupSymbol is the Hermann-Mauguin point-group symbol.
	PointgroupSymbol string
}

// rawDataset wraps the engine-allocated record so its release runs exactly
// once. The engine frees the record's variable-length arrays and its header
// together in a single call; freeing twice would be a double-free and never
// freeing would leak, so free nils the pointer and is a no-op afterwards.
type rawDataset struct {
	ptr *C.SpglibDataset
}

func (r *rawDataset) free() {
	if r.ptr == nil {
		return
	}
	C.spg_free_dataset(r.ptr)
	r.ptr = nil
}

// NewDataset runs the engine's full symmetry analysis for the cell and
// marshals the result into an owned Dataset. The cell is read, never written.
// symprec is the absolute tolerance for coincidence checks.
//
// Every variable-length array of the engine record is copied out, sized by
// its declared count, before the record is released; the returned Dataset
// holds no engine memory. An engine record that cannot be produced or decoded
// surfaces as ErrUnknown, the analysis call reports no finer cause.
//
// Cells assembled by hand rather than through NewCell are re-checked against
// the structural invariants before the engine sees them.
func NewDataset(c *Cell, symprec float64) (*Dataset, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if len(c.Positions) != len(c.Types) {
		return nil, ErrAtomCountMismatch
	}
	if len(c.Positions) == 0 {
		return nil, ErrNoAtoms
	}
	raw := rawDataset{ptr: C.spg_get_dataset(
		(*[3]C.double)(unsafe.Pointer(&c.Lattice[0])),
		(*[3]C.double)(unsafe.Pointer(&c.Positions[0])),
		(*C.int)(unsafe.Pointer(&c.Types[0])),
		C.int(len(c.Positions)),
		C.double(symprec),
	)}
	if raw.ptr == nil {
		return nil, ErrUnknown
	}
	defer raw.free()
	return marshalDataset(raw.ptr)
}

// marshalDataset copies one engine record into an owned Dataset. The caller
// still owns the record and remains responsible for its single release.
func marshalDataset(p *C.SpglibDataset) (*Dataset, error) {
	d := &Dataset{
		SpacegroupNumber:     int(p.spacegroup_number),
		HallNumber:           int(p.hall_number),
		TransformationMatrix: mat3(p.transformation_matrix),
		OriginShift:          vec3(p.origin_shift),
		NumOperations:        int(p.n_operations),
		NumAtoms:             int(p.n_atoms),
		PrimitiveLattice:     mat3(p.primitive_lattice),
		NumStdAtoms:          int(p.n_std_atoms),
		StdLattice:           mat3(p.std_lattice),
		StdRotationMatrix:    mat3(p.std_rotation_matrix),
	}

	var err error
	if d.InternationalSymbol, err = goText(&p.international_symbol[0]); err != nil {
		return nil, err
	}
	if d.HallSymbol, err = goText(&p.hall_symbol[0]); err != nil {
		return nil, err
	}
	if d.Choice, err = goText(&p.choice[0]); err != nil {
		return nil, err
	}
	if d.PointgroupSymbol, err = goText(&p.pointgroup_symbol[0]); err != nil {
		return nil, err
	}

	d.Rotations = copyMat3s(p.rotations, d.NumOperations)
	d.Translations = copyVec3s(p.translations, d.NumOperations)

	d.Wyckoffs = copyInts(p.wyckoffs, d.NumAtoms)
	d.SiteSymmetrySymbols = []string{}
	d.EquivalentAtoms = copyInts(p.equivalent_atoms, d.NumAtoms)
	d.CrystallographicOrbits = copyInts(p.crystallographic_orbits, d.NumAtoms)
	d.MappingToPrimitive = copyInts(p.mapping_to_primitive, d.NumAtoms)

	d.StdTypes = copyInts(p.std_types, d.NumStdAtoms)
	d.StdPositions = copyVec3s(p.std_positions, d.NumStdAtoms)
	d.StdMappingToPrimitive = copyInts(p.std_mapping_to_primitive, d.NumStdAtoms)

	return d, nil
}

// Spacegroup looks up the canonical space-group record for the dataset's hall
// number. The two results describe the same group and agree on the hall and
// space-group numbers.
func (d *Dataset) Spacegroup() (*Spacegroup, error) {
	return NewSpacegroup(d.HallNumber)
}

// wyckoffLetterTable is the engine's Wyckoff-letter alphabet. Space group 47
// (Pmmm) has 27 positions, so the letters run past "z" into "A".
const wyckoffLetterTable = "abcdefghijklmnopqrstuvwxyzA"

// WyckoffLetters renders Wyckoffs under the engine's encoding: code 0 is "a",
// code 26 is "A". A code outside the table renders as "?", the CIF unknown
// marker.
func (d *Dataset) WyckoffLetters() []string {
	out := make([]string, len(d.Wyckoffs))
	for i, w := range d.Wyckoffs {
		if w < 0 || int(w) >= len(wyckoffLetterTable) {
			out[i] = "?"
			continue
		}
		out[i] = string(wyckoffLetterTable[w])
	}
	return out
}

// goText decodes a NUL-terminated engine string. The record's identifiers are
// scientific names; bytes that are not valid UTF-8 mean a corrupt record and
// surface as ErrUnknown rather than being substituted.
func goText(p *C.char) (string, error) {
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		return "", ErrUnknown
	}
	return s, nil
}

// copyInts adopts n ints from engine memory into a fresh Go slice. The source
// stays part of the engine record and is released once with it.
func copyInts(p *C.int, n int) []int32 {
	out := make([]int32, n)
	copy(out, unsafe.Slice((*int32)(unsafe.Pointer(p)), n))
	return out
}

func copyVec3s(p *[3]C.double, n int) [][3]float64 {
	out := make([][3]float64, n)
	copy(out, unsafe.Slice((*[3]float64)(unsafe.Pointer(p)), n))
	return out
}

func copyMat3s(p *[3][3]C.int, n int) [][3][3]int32 {
	out := make([][3][3]int32, n)
	copy(out, unsafe.Slice((*[3][3]int32)(unsafe.Pointer(p)), n))
	return out
}

func vec3(v [3]C.double) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

func mat3(m [3][3]C.double) [3][3]float64 {
	var out [3][3]float64
	for i := range m {
		out[i] = vec3(m[i])
	}
	return out
}
