// SPDX-License-Identifier: MIT

package cellio

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/cif"

	spglib "github.com/crystalkit/go-spglib"
)

// CIF data tags this package consumes and produces. The parser stores tags
// lowercased and without the leading underscore.
const (
	tagLengthA    = "cell_length_a"
	tagLengthB    = "cell_length_b"
	tagLengthC    = "cell_length_c"
	tagAngleAlpha = "cell_angle_alpha"
	tagAngleBeta  = "cell_angle_beta"
	tagAngleGamma = "cell_angle_gamma"
	tagFractX     = "atom_site_fract_x"
	tagFractY     = "atom_site_fract_y"
	tagFractZ     = "atom_site_fract_z"
	tagTypeSymbol = "atom_site_type_symbol"
	tagSiteLabel  = "atom_site_label"
)

// ReadCIF reads one data block of a CIF document into a Cell. The lattice is
// reconstructed from the six cell parameters in the canonical orientation (a
// along x, b in the xy plane); positions and species come from the atom-site
// loop, with _atom_site_type_symbol preferred and _atom_site_label as the
// fallback species column.
func ReadCIF(r io.Reader, opts ...Option) (*spglib.Cell, error) {
	cfg := applyOptions(opts)

	doc, err := cif.Read(r)
	if err != nil {
		return nil, fmt.Errorf("cellio: parse cif: %w", err)
	}
	blk, err := chooseBlock(doc, cfg.block)
	if err != nil {
		return nil, err
	}

	lattice, err := blockLattice(blk)
	if err != nil {
		return nil, err
	}
	positions, symbols, err := blockAtomSites(blk)
	if err != nil {
		return nil, err
	}
	return spglib.NewCell(lattice, positions, labelSpecies(symbols))
}

// WriteCIF writes the cell as a single-block CIF document: the six cell
// parameters plus an atom-site loop. Basis orientation is not stored, only
// lengths and angles; reading the file back yields the canonical orientation
// of the same cell. Species labels are written as integers.
func WriteCIF(w io.Writer, c *spglib.Cell, opts ...Option) error {
	cfg := applyOptions(opts)
	name := cfg.block
	if name == "" {
		name = "cell"
	}

	a, b, cc, alpha, beta, gamma := ParamsFromLattice(c.Lattice)

	n := c.NumAtoms()
	types := make([]int, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := 0; i < n; i++ {
		types[i] = int(c.Types[i])
		xs[i] = c.Positions[i][0]
		ys[i] = c.Positions[i][1]
		zs[i] = c.Positions[i][2]
	}

	sites := &cif.Loop{
		Columns: map[string]int{
			tagTypeSymbol: 0,
			tagFractX:     1,
			tagFractY:     2,
			tagFractZ:     3,
		},
		Values: []cif.ValueLoop{
			cif.AsValues(types),
			cif.AsValues(xs),
			cif.AsValues(ys),
			cif.AsValues(zs),
		},
	}

	doc := &cif.CIF{
		Blocks: map[string]*cif.DataBlock{
			name: {
				Block: cif.Block{
					Name: name,
					Items: map[string]cif.Value{
						tagLengthA:    cif.AsValue(a),
						tagLengthB:    cif.AsValue(b),
						tagLengthC:    cif.AsValue(cc),
						tagAngleAlpha: cif.AsValue(alpha),
						tagAngleBeta:  cif.AsValue(beta),
						tagAngleGamma: cif.AsValue(gamma),
					},
					Loops: map[string]*cif.Loop{
						tagTypeSymbol: sites,
						tagFractX:     sites,
						tagFractY:     sites,
						tagFractZ:     sites,
					},
				},
			},
		},
	}
	if err := doc.Write(w); err != nil {
		return fmt.Errorf("cellio: write cif: %w", err)
	}
	return nil
}

// LatticeFromParams builds the canonical row-vector basis from cell lengths
// and angles (degrees): a along x, b in the xy plane, c completing a
// right-handed set. Parameters that describe no three-dimensional cell are
// ErrBadCellParameters.
func LatticeFromParams(a, b, c, alpha, beta, gamma float64) ([3][3]float64, error) {
	var m [3][3]float64
	if a <= 0 || b <= 0 || c <= 0 {
		return m, fmt.Errorf("%w: lengths %g, %g, %g", ErrBadCellParameters, a, b, c)
	}
	for _, angle := range [3]float64{alpha, beta, gamma} {
		if angle <= 0 || angle >= 180 {
			return m, fmt.Errorf("%w: angles %g, %g, %g", ErrBadCellParameters, alpha, beta, gamma)
		}
	}

	ca := cosDeg(alpha)
	cb := cosDeg(beta)
	cg := cosDeg(gamma)
	sg := sinDeg(gamma)

	// Squared volume of the unit parallelepiped; non-positive means the three
	// angles cannot close in three dimensions.
	v2 := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if v2 <= 0 {
		return m, fmt.Errorf("%w: angles %g, %g, %g enclose no volume", ErrBadCellParameters, alpha, beta, gamma)
	}

	m[0] = [3]float64{a, 0, 0}
	m[1] = [3]float64{b * cg, b * sg, 0}
	m[2] = [3]float64{c * cb, c * (ca - cb*cg) / sg, c * math.Sqrt(v2) / sg}
	return m, nil
}

// ParamsFromLattice recovers cell lengths and angles (degrees) from a basis.
// It is the inverse of LatticeFromParams up to orientation: the parameters of
// a rotated basis are identical.
func ParamsFromLattice(m [3][3]float64) (a, b, c, alpha, beta, gamma float64) {
	a = norm(m[0])
	b = norm(m[1])
	c = norm(m[2])
	alpha = angleDeg(m[1], m[2])
	beta = angleDeg(m[0], m[2])
	gamma = angleDeg(m[0], m[1])
	return a, b, c, alpha, beta, gamma
}

func chooseBlock(doc *cif.CIF, name string) (*cif.Block, error) {
	if name != "" {
		blk, ok := doc.Blocks[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, name)
		}
		return &blk.Block, nil
	}

	switch len(doc.Blocks) {
	case 0:
		return nil, ErrNoDataBlocks
	case 1:
		for _, blk := range doc.Blocks {
			return &blk.Block, nil
		}
	}

	names := make([]string, 0, len(doc.Blocks))
	for n := range doc.Blocks {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%w: have %s", ErrAmbiguousBlock, strings.Join(names, ", "))
}

func blockLattice(blk *cif.Block) ([3][3]float64, error) {
	var values [6]float64
	for i, tag := range [6]string{
		tagLengthA, tagLengthB, tagLengthC,
		tagAngleAlpha, tagAngleBeta, tagAngleGamma,
	} {
		v, err := floatItem(blk, tag)
		if err != nil {
			return [3][3]float64{}, err
		}
		values[i] = v
	}
	return LatticeFromParams(values[0], values[1], values[2], values[3], values[4], values[5])
}

func blockAtomSites(blk *cif.Block) ([][3]float64, []string, error) {
	sites, ok := blk.Loops[tagFractX]
	if !ok {
		return nil, nil, fmt.Errorf("%w: _%s loop", ErrMissingItem, tagFractX)
	}

	xs, err := floatColumn(sites, tagFractX)
	if err != nil {
		return nil, nil, err
	}
	ys, err := floatColumn(sites, tagFractY)
	if err != nil {
		return nil, nil, err
	}
	zs, err := floatColumn(sites, tagFractZ)
	if err != nil {
		return nil, nil, err
	}

	symbols, err := stringColumn(sites, tagTypeSymbol)
	if err != nil {
		if symbols, err = stringColumn(sites, tagSiteLabel); err != nil {
			return nil, nil, fmt.Errorf("%w: _%s or _%s", ErrMissingItem, tagTypeSymbol, tagSiteLabel)
		}
	}

	// Columns of one loop always have equal length, the parser enforces the
	// table shape.
	positions := make([][3]float64, len(xs))
	for i := range xs {
		positions[i] = [3]float64{xs[i], ys[i], zs[i]}
	}
	return positions, symbols, nil
}

// labelSpecies maps symbols to dense integer labels by first appearance,
// starting at 1. Only equality of labels is meaningful downstream.
func labelSpecies(symbols []string) []int32 {
	labels := make(map[string]int32, len(symbols))
	types := make([]int32, len(symbols))
	for i, sym := range symbols {
		id, ok := labels[sym]
		if !ok {
			id = int32(len(labels)) + 1
			labels[sym] = id
		}
		types[i] = id
	}
	return types
}

func floatItem(blk *cif.Block, tag string) (float64, error) {
	v, ok := blk.Items[tag]
	if !ok {
		return 0, fmt.Errorf("%w: _%s", ErrMissingItem, tag)
	}
	switch raw := v.Raw().(type) {
	case float64:
		return raw, nil
	case int:
		return float64(raw), nil
	case string:
		return parseNumeric(raw)
	}
	return 0, fmt.Errorf("%w: _%s", ErrBadValue, tag)
}

func floatColumn(lp *cif.Loop, tag string) ([]float64, error) {
	idx, ok := lp.Columns[tag]
	if !ok {
		return nil, fmt.Errorf("%w: _%s", ErrMissingItem, tag)
	}
	col := lp.Values[idx]

	if fs := col.Floats(); fs != nil {
		return fs, nil
	}
	if is := col.Ints(); is != nil {
		out := make([]float64, len(is))
		for i, v := range is {
			out[i] = float64(v)
		}
		return out, nil
	}

	// A single uncertainty-suffixed entry demotes the whole column to
	// strings; parse each element individually.
	ss := col.Strings()
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := parseNumeric(s)
		if err != nil {
			return nil, fmt.Errorf("_%s row %d: %w", tag, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func stringColumn(lp *cif.Loop, tag string) ([]string, error) {
	idx, ok := lp.Columns[tag]
	if !ok {
		return nil, fmt.Errorf("%w: _%s", ErrMissingItem, tag)
	}
	col := lp.Values[idx]

	if ss := col.Strings(); ss != nil {
		return ss, nil
	}
	if is := col.Ints(); is != nil {
		out := make([]string, len(is))
		for i, v := range is {
			out[i] = strconv.Itoa(v)
		}
		return out, nil
	}
	fs := col.Floats()
	out := make([]string, len(fs))
	for i, v := range fs {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out, nil
}

// parseNumeric parses a CIF numeric that the lexer left as a string, usually
// because of a standard-uncertainty suffix: "4.000(2)" means 4.000 with an
// uncertainty of 2 in the last digit. The suffix is dropped.
func parseNumeric(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	if i := strings.IndexByte(cleaned, '('); i >= 0 && strings.HasSuffix(cleaned, ")") {
		cleaned = cleaned[:i]
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return v, nil
}

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func angleDeg(u, v [3]float64) float64 {
	cos := (u[0]*v[0] + u[1]*v[1] + u[2]*v[2]) / (norm(u) * norm(v))
	// Rounding can push the ratio just past ±1 for near-parallel rows, where
	// acos is NaN.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}
