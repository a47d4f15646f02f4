// SPDX-License-Identifier: MIT

// Package spglib finds and describes the symmetry of crystal structures —
// space-group identification, cell standardization and lattice reduction —
// by binding the C spglib library behind a safe, copy-out Go API.
//
// 🚀 What is go-spglib?
//
//	A thin, predictable cgo facade over libsymspg that gives you:
//		• Cell: lattice + fractional positions + species, with in-place
//		  Standardize, NiggliReduce and DelaunayReduce transforms
//		• Dataset: the full symmetry analysis — space group, hall number,
//		  every operation, Wyckoff letters, equivalence tables and the
//		  standardized cell — as one owned Go snapshot
//		• Spacegroup: the database record for any of the 530 hall-number
//		  settings (Hermann-Mauguin, Schoenflies, Hall symbols)
//		• HallNumberFromSymmetry: identify a setting from raw operations
//
// ✨ Why this shape?
//
//   - No hidden lifetimes — every engine record is copied into Go memory
//     and released before a constructor returns; results never point back
//     into C and need no Close or teardown
//   - Errors, not codes — every engine failure maps onto a sentinel error
//     (ErrAtomsTooClose, ErrNiggliFailed, ...) you can match with errors.Is
//   - Explicit tolerances — every analysis call takes its symprec at the
//     call site, nothing is ambient
//
// ⚙️ Usage:
//
//	import "github.com/crystalkit/go-spglib"
//
//	cell, err := spglib.NewCell(lattice, positions, types)
//	if err != nil { ... }
//
//	ds, err := spglib.NewDataset(cell, 1e-5)
//	if err != nil { ... }
//	fmt.Println(ds.SpacegroupNumber, ds.InternationalSymbol)
//
// Concurrency: the underlying engine keeps internal state during a call, so
// do not run two engine-backed operations (NewDataset, Standardize,
// NiggliReduce, DelaunayReduce, NewSpacegroup, HallNumberFromSymmetry)
// concurrently. Serialize them with a mutex; the pure accessors on Cell,
// Dataset and Spacegroup are safe to use from any goroutine once built.
//
// Building needs the spglib C library (header spglib.h, library -lsymspg)
// visible to cgo. Subpackage cellio reads and writes cells as CIF and YAML
// without touching the engine; cmd/spgcell wraps it all in a CLI.
//
//	go get github.com/crystalkit/go-spglib
package spglib
