package compressor

import "errors"

// ErrConfiguration marks a caller-supplied configuration mistake:
// Compress and Decompress return it, wrapped, when called without a model
// or a coder, before any compression work begins.
var ErrConfiguration = errors.New("compressor: configuration error")

// ErrInputTooLarge marks a message whose length would overflow the
// container's u32 symbol count before a single byte of output is
// written.
var ErrInputTooLarge = errors.New("compressor: input too large")

// ErrDesync marks a decode that could not reproduce a message: a
// truncated bit stream, or a tree walk that reached a dead end before
// the declared symbol count was exhausted.
var ErrDesync = errors.New("compressor: decode desync")
