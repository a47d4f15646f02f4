// SPDX-License-Identifier: MIT

package spglib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spglib "github.com/crystalkit/go-spglib"
)

// bccConventional builds the conventional body-centered cubic fixture used
// across the engine-backed tests: a 4 Å cube with atoms at the corner and the
// body center, one species.
func bccConventional(t *testing.T) *spglib.Cell {
	t.Helper()
	cell, err := spglib.NewCell(
		[3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int32{1, 1},
	)
	require.NoError(t, err, "fixture cell must construct")
	return cell
}

// det3 computes the determinant of a row-vector basis, i.e. the signed cell
// volume.
func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// assertLatticeInDelta compares two bases element-wise within delta.
func assertLatticeInDelta(t *testing.T, want, got [3][3]float64, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], got[i][j], delta, "lattice[%d][%d]", i, j)
		}
	}
}
