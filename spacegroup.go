// SPDX-License-Identifier: MIT

package spglib

/*
#include <spglib.h>
*/
import "C"

// Spacegroup is the database record of one space-group type in one setting,
// addressed by hall number (serial index 1..530 over the settings listed in
// "Concise Space-Group Symbols"). It carries naming only; operations and
// per-atom assignments come from a Dataset.
type Spacegroup struct {
	// Number is the space-group type number from the International Tables
	// for Crystallography (1..230). Several hall numbers share one Number,
	// one per setting.
	Number int

	// InternationalShort is the short Hermann-Mauguin symbol, e.g. "P3m1".
	InternationalShort string

	// InternationalFull is the full Hermann-Mauguin symbol, e.g. "P 3 m 1".
	InternationalFull string

	// International is the Hermann-Mauguin symbol as indexed by the engine's
	// database, with setting decorations where the type has more than one.
	International string

	// Schoenflies is the Schoenflies symbol with setting suffix, e.g. "C3v^1".
	Schoenflies string

	// HallSymbol is the Hall space-group symbol of this exact setting.
	HallSymbol string

	// Choice identifies the unique-axis, setting, or cell choice, empty when
	// the type has a single conventional description.
	Choice string

	// PointgroupInternational is the Hermann-Mauguin point-group symbol.
	PointgroupInternational string

	// PointgroupSchoenflies is the Schoenflies point-group symbol.
	PointgroupSchoenflies string

	// ArithmeticCrystalClassNumber is the arithmetic crystal class (1..73).
	ArithmeticCrystalClassNumber int

	// ArithmeticCrystalClassSymbol is the symbol of that class, e.g. "3m1P".
	ArithmeticCrystalClassSymbol string
}

// NewSpacegroup fetches the database record for a hall number. The lookup is
// a table read in the engine; no cell and no tolerance are involved. The hall
// number is passed through as given, a value outside 1..530 yields whatever
// record the engine hands back for it. A record whose text fields cannot be
// decoded surfaces as ErrUnknown.
func NewSpacegroup(hallNumber int) (*Spacegroup, error) {
	raw := C.spg_get_spacegroup_type(C.int(hallNumber))
	return marshalSpacegroup(&raw)
}

// marshalSpacegroup copies one by-value engine record into an owned
// Spacegroup. The record lives on the Go stack, there is nothing to release.
func marshalSpacegroup(p *C.SpglibSpacegroupType) (*Spacegroup, error) {
	s := &Spacegroup{
		Number:                       int(p.number),
		ArithmeticCrystalClassNumber: int(p.arithmetic_crystal_class_number),
	}

	var err error
	if s.InternationalShort, err = goText(&p.international_short[0]); err != nil {
		return nil, err
	}
	if s.InternationalFull, err = goText(&p.international_full[0]); err != nil {
		return nil, err
	}
	if s.International, err = goText(&p.international[0]); err != nil {
		return nil, err
	}
	if s.Schoenflies, err = goText(&p.schoenflies[0]); err != nil {
		return nil, err
	}
	if s.HallSymbol, err = goText(&p.hall_symbol[0]); err != nil {
		return nil, err
	}
	if s.Choice, err = goText(&p.choice[0]); err != nil {
		return nil, err
	}
	if s.PointgroupInternational, err = goText(&p.pointgroup_international[0]); err != nil {
		return nil, err
	}
	if s.PointgroupSchoenflies, err = goText(&p.pointgroup_schoenflies[0]); err != nil {
		return nil, err
	}
	if s.ArithmeticCrystalClassSymbol, err = goText(&p.arithmetic_crystal_class_symbol[0]); err != nil {
		return nil, err
	}

	return s, nil
}
