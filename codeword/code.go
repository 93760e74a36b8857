package codeword

import "github.com/mororo18/compadre/symbol"

// entry pairs a symbol with the code word a builder assigned it.
type entry[I comparable] struct {
	sym symbol.Symbol[I, int]
	cw  CodeWord
}

// Code is a small linear map from symbol to CodeWord, as produced by a
// code tree's CodeMap and consumed by a driver.
type Code[I comparable] struct {
	entries []entry[I]
}

// Get returns the code word assigned to s, if any.
func (c *Code[I]) Get(s symbol.Symbol[I, int]) (CodeWord, bool) {
	for _, e := range c.entries {
		if e.sym.Equal(s) {
			return e.cw, true
		}
	}
	return CodeWord{}, false
}

// Set assigns cw to s, overwriting any prior code word for the same
// symbol (by Equal).
func (c *Code[I]) Set(s symbol.Symbol[I, int], cw CodeWord) {
	for i, e := range c.entries {
		if e.sym.Equal(s) {
			c.entries[i].cw = cw
			return
		}
	}
	c.entries = append(c.entries, entry[I]{sym: s, cw: cw})
}

// Len returns the number of (symbol, code word) pairs held.
func (c *Code[I]) Len() int {
	return len(c.entries)
}
