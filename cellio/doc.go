// SPDX-License-Identifier: MIT

// Package cellio reads and writes crystal cells as structure files, turning
// CIF and YAML documents into spglib.Cell values and back.
//
// 🚀 What is cellio?
//
//	The file frontend of go-spglib. It never touches the symmetry engine:
//		• CIF: cell parameters (_cell_length_*, _cell_angle_*) become lattice
//		  vectors via the standard crystallographic construction; atom-site
//		  loops become fractional positions and species labels
//		• YAML: a literal cell document (lattice / positions / types),
//		  read and written
//		• ReadFile / WriteFile dispatch on the file extension
//
// ✨ Behavior worth knowing:
//
//   - Standard-uncertainty suffixes ("4.000(2)") are stripped before numeric
//     parsing, so measured CIF data loads without preprocessing
//   - Species symbols map to dense integer labels by first appearance; only
//     label equality is meaningful, names are not preserved
//   - A CIF file with several data blocks needs WithDataBlock; a lone block
//     is used implicitly
//   - Writing a CIF stores cell parameters, not basis vectors, so reading it
//     back yields the canonical (lower-triangular) orientation
//
// ⚙️ Usage:
//
//	import "github.com/crystalkit/go-spglib/cellio"
//
//	cell, err := cellio.ReadFile("quartz.cif")
//	if err != nil { ... }
//
//	err = cellio.WriteFile("quartz.yaml", cell)
//
// Validation is layered: this package rejects malformed documents (shape,
// numerics, missing items) with its own sentinels, then the core constructor
// enforces the structural invariants (index alignment, at least one atom).
package cellio
