// SPDX-License-Identifier: MIT
// Package spglib: sentinel error set.
// Engine failures form a closed taxonomy translated from the C library's
// integer status codes; every operation returns one of these sentinels and
// callers match them via errors.Is. The engine reports nothing beyond the
// code, so no sentinel carries payload.

package spglib

import "errors"

// Engine failure sentinels, one per engine status code (see ErrorFromCode).
var (
	// ErrSpacegroupSearchFailed indicates the space-group search failed.
	ErrSpacegroupSearchFailed = errors.New("spglib: space group search failed")

	// ErrCellStandardizationFailed indicates the cell standardization routine failed.
	ErrCellStandardizationFailed = errors.New("spglib: cell standardization failed")

	// ErrSymmetryOperationSearchFailed indicates the symmetry operation search failed.
	ErrSymmetryOperationSearchFailed = errors.New("spglib: symmetry operation search failed")

	// ErrAtomsTooClose indicates two atoms occupy the same site within tolerance.
	ErrAtomsTooClose = errors.New("spglib: atoms too close")

	// ErrPointgroupNotFound indicates the point-group search failed.
	ErrPointgroupNotFound = errors.New("spglib: pointgroup not found")

	// ErrNiggliFailed indicates the Niggli reduction routine failed.
	ErrNiggliFailed = errors.New("spglib: niggli failed")

	// ErrDelaunayFailed indicates the Delaunay reduction routine failed.
	ErrDelaunayFailed = errors.New("spglib: delaunay failed")

	// ErrArraySizeShortage indicates an array argument had insufficient capacity.
	ErrArraySizeShortage = errors.New("spglib: array size shortage")

	// ErrUnknown covers every engine condition without a dedicated code,
	// including undecodable text in an engine-returned record.
	ErrUnknown = errors.New("spglib: unknown error")
)

// Input-validation sentinels. These guard the structural invariants of
// caller-supplied data and are returned before any engine call is attempted;
// they are not translations of engine codes.
var (
	// ErrNilCell indicates a nil cell passed to an engine operation.
	ErrNilCell = errors.New("spglib: nil cell")

	// ErrAtomCountMismatch indicates positions and types differ in length.
	ErrAtomCountMismatch = errors.New("spglib: positions and types lengths differ")

	// ErrNoAtoms indicates a cell with no atoms.
	ErrNoAtoms = errors.New("spglib: cell has no atoms")

	// ErrOperationCountMismatch indicates rotations and translations differ in length.
	ErrOperationCountMismatch = errors.New("spglib: rotations and translations lengths differ")
)

// ErrorFromCode translates a raw engine status code into the sentinel set
// above. The mapping is total: codes 1 through 8 translate one-to-one, and
// every other value, zero and out-of-range codes included, yields ErrUnknown.
func ErrorFromCode(code int) error {
	switch code {
	case 1:
		return ErrSpacegroupSearchFailed
	case 2:
		return ErrCellStandardizationFailed
	case 3:
		return ErrSymmetryOperationSearchFailed
	case 4:
		return ErrAtomsTooClose
	case 5:
		return ErrPointgroupNotFound
	case 6:
		return ErrNiggliFailed
	case 7:
		return ErrDelaunayFailed
	case 8:
		return ErrArraySizeShortage
	default:
		return ErrUnknown
	}
}
