// SPDX-License-Identifier: MIT

package spglib

/*
#cgo LDFLAGS: -lsymspg
#include <spglib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// MajorVersion reports the linked engine's major version.
func MajorVersion() int {
	return int(C.spg_get_major_version())
}

// MinorVersion reports the linked engine's minor version.
func MinorVersion() int {
	return int(C.spg_get_minor_version())
}

// MicroVersion reports the linked engine's micro version.
func MicroVersion() int {
	return int(C.spg_get_micro_version())
}

// Version renders the linked engine's version as "major.minor.micro".
func Version() string {
	return fmt.Sprintf("%d.%d.%d", MajorVersion(), MinorVersion(), MicroVersion())
}

// HallNumberFromSymmetry identifies the hall number of the space-group
// setting generated by a set of symmetry operations. rotations and
// translations are index-aligned and must have equal length; a mismatch is
// ErrOperationCountMismatch. An empty set, or a set the engine cannot match
// to any of the 530 settings, is ErrSpacegroupSearchFailed. symprec is the
// tolerance applied when comparing translation parts.
func HallNumberFromSymmetry(rotations [][3][3]int32, translations [][3]float64, symprec float64) (int, error) {
	if len(rotations) != len(translations) {
		return 0, ErrOperationCountMismatch
	}
	if len(rotations) == 0 {
		return 0, ErrSpacegroupSearchFailed
	}
	hall := C.spg_get_hall_number_from_symmetry(
		(*[3][3]C.int)(unsafe.Pointer(&rotations[0])),
		(*[3]C.double)(unsafe.Pointer(&translations[0])),
		C.int(len(rotations)),
		C.double(symprec),
	)
	if hall == 0 {
		return 0, ErrSpacegroupSearchFailed
	}
	return int(hall), nil
}
