// SPDX-License-Identifier: MIT

package spglib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spglib "github.com/crystalkit/go-spglib"
)

// TestNewSpacegroup_Hall446 pins every field of a trigonal reference record,
// including the empty Choice of a single-setting description.
func TestNewSpacegroup_Hall446(t *testing.T) {
	sg, err := spglib.NewSpacegroup(446)
	require.NoError(t, err)

	assert.Equal(t, 156, sg.Number)
	assert.Equal(t, "P3m1", sg.InternationalShort)
	assert.Equal(t, "P 3 m 1", sg.InternationalFull)
	assert.Equal(t, "P 3 m 1", sg.International)
	assert.Equal(t, "C3v^1", sg.Schoenflies)
	assert.Equal(t, `P 3 -2"`, sg.HallSymbol)
	assert.Equal(t, "", sg.Choice)
	assert.Equal(t, "3m", sg.PointgroupInternational)
	assert.Equal(t, "C3v", sg.PointgroupSchoenflies)
	assert.Equal(t, 45, sg.ArithmeticCrystalClassNumber)
	assert.Equal(t, "3m1P", sg.ArithmeticCrystalClassSymbol)
}

// TestNewSpacegroup_Hall529 checks the cubic record the dataset fixture
// resolves to.
func TestNewSpacegroup_Hall529(t *testing.T) {
	sg, err := spglib.NewSpacegroup(529)
	require.NoError(t, err)

	assert.Equal(t, 229, sg.Number)
	assert.Equal(t, "Im-3m", sg.InternationalShort)
	assert.Equal(t, "Oh^9", sg.Schoenflies)
	assert.Equal(t, "-I 4 2 3", sg.HallSymbol)
	assert.Equal(t, "", sg.Choice)
	assert.Equal(t, "m-3m", sg.PointgroupInternational)
	assert.Equal(t, "Oh", sg.PointgroupSchoenflies)
}

// TestNewSpacegroup_FirstAndLast exercises both ends of the hall-number range.
func TestNewSpacegroup_FirstAndLast(t *testing.T) {
	first, err := spglib.NewSpacegroup(1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "P1", first.InternationalShort)

	last, err := spglib.NewSpacegroup(530)
	require.NoError(t, err)
	assert.Equal(t, 230, last.Number)
	assert.Equal(t, "Ia-3d", last.InternationalShort)
}
