// Package model defines the interface surface the compressor driver
// consumes from a probability model and from a coder (tree builder),
// per the system's external interface contract.
package model

import (
	"github.com/mororo18/compadre/codetree"
	"github.com/mororo18/compadre/symbol"
)

// Sym is the concrete symbol type every model and coder in this module
// operates over: a byte-alphabet symbol with an integer weight/counter
// attribute.
type Sym = symbol.Symbol[byte, int]

// Dist is the concrete SymbolList type every model and coder operates
// over.
type Dist = symbol.SymbolList[byte, int]

// EncodingStep is one (symbol-to-encode, distribution-to-encode-against)
// pair from a model's encoding list. The driver builds a tree over Dist
// and encodes Symbol against it.
type EncodingStep struct {
	Symbol Sym
	Dist   Dist
}

// Model is the probability model the driver queries. Emit is the
// encoder-side operation; CurrentDistribution and Observe are the
// decoder-side operations, used together in a loop until a non-escape
// symbol is produced.
type Model interface {
	// Emit returns the ordered encoding list for message symbol s, and
	// updates the model's internal state as if s had just been
	// observed.
	Emit(s Sym) []EncodingStep

	// CurrentDistribution returns the distribution the decoder should
	// build a tree over next, given everything observed so far in the
	// current decode round.
	CurrentDistribution() Dist

	// Observe reports a decoded symbol (possibly escape) back to the
	// model, advancing its state exactly as Emit would have for the
	// same symbol.
	Observe(s Sym)
}

// Coder builds a CodeTree over a distribution.
type Coder interface {
	BuildTree(dist Dist) (*codetree.CodeTree[byte], error)
}
