// SPDX-License-Identifier: MIT

package cellio

import "errors"

// Sentinel errors for structure-file problems. Everything below is detected
// in this package, before the core constructor sees the data; match with
// errors.Is. Detail (tag names, counts, offending values) arrives wrapped
// around these.
var (
	// ErrUnknownExtension marks a path whose extension maps to no format.
	ErrUnknownExtension = errors.New("cellio: unrecognized file extension")

	// ErrNoDataBlocks marks a CIF file that contains no data block at all.
	ErrNoDataBlocks = errors.New("cellio: no data blocks")

	// ErrAmbiguousBlock marks a multi-block CIF file read without
	// WithDataBlock.
	ErrAmbiguousBlock = errors.New("cellio: multiple data blocks, name one with WithDataBlock")

	// ErrBlockNotFound marks a WithDataBlock name absent from the file.
	ErrBlockNotFound = errors.New("cellio: data block not found")

	// ErrMissingItem marks a required CIF data item or loop column that the
	// chosen block does not carry.
	ErrMissingItem = errors.New("cellio: required data item missing")

	// ErrBadValue marks a value that should be numeric but does not parse,
	// even after uncertainty-suffix cleaning.
	ErrBadValue = errors.New("cellio: malformed numeric value")

	// ErrBadCellParameters marks lengths or angles that describe no
	// three-dimensional cell.
	ErrBadCellParameters = errors.New("cellio: unphysical cell parameters")

	// ErrMalformedDocument marks a YAML cell document with the wrong shape.
	ErrMalformedDocument = errors.New("cellio: malformed cell document")
)
