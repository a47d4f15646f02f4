// SPDX-License-Identifier: MIT

package cellio

// Option configures a structure-file read or write before it runs.
type Option func(*config)

type config struct {
	block string
}

// WithDataBlock names the CIF data block to use. Reading a multi-block file
// without it fails as ambiguous; writing without it falls back to the block
// name "cell". Names match case-insensitively, the CIF convention.
func WithDataBlock(name string) Option {
	return func(c *config) { c.block = name }
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
