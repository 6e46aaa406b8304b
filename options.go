// SPDX-License-Identifier: GPL-2.0-only

package zopfli

// Options configures the encoder. Verbose and VerboseMore select
// diagnostics in the reference driver this core is embedded in; they are
// otherwise inert here. NumIterations and BlockSplittingMax govern the
// iterative/splitting passes that sit outside this core's scope and are
// accepted only so callers can carry a single Options value through their
// whole pipeline.
type Options struct {
	Verbose     bool
	VerboseMore bool

	// NumIterations bounds the iterative "squeeze" rerun (out of scope for
	// this core, carried through for forward compatibility).
	NumIterations int

	// BlockSplitting enables the block-splitting driver (out of scope for
	// this core).
	BlockSplitting bool

	// BlockSplittingMax bounds the number of blocks the splitting driver
	// may produce (out of scope for this core).
	BlockSplittingMax uint
}

// DefaultOptions returns the reference default configuration.
func DefaultOptions() *Options {
	return &Options{
		NumIterations:     15,
		BlockSplitting:    true,
		BlockSplittingMax: 15,
	}
}

func optionsOrDefault(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}
