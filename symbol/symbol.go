// Package symbol provides the Symbol and SymbolList value types shared by
// the code tree, the tree builders, and the PPM model. A Symbol pairs an
// optional "inner" value with an optional numeric attribute used as a
// weight or an occurrence counter; a Symbol with no inner value is the
// escape symbol, rho.
package symbol

// Symbol is an opaque pair of an optional inner value of type I and an
// optional attribute of type A. The zero value, with hasInner false, is
// rho: the escape symbol.
type Symbol[I comparable, A any] struct {
	inner        I
	hasInner     bool
	attribute    A
	hasAttribute bool
}

// New builds a concrete (non-escape) symbol carrying inner.
func New[I comparable, A any](inner I) Symbol[I, A] {
	return Symbol[I, A]{inner: inner, hasInner: true}
}

// NewWithAttribute builds a concrete symbol carrying both inner and attr.
func NewWithAttribute[I comparable, A any](inner I, attr A) Symbol[I, A] {
	return Symbol[I, A]{inner: inner, hasInner: true, attribute: attr, hasAttribute: true}
}

// Escape returns rho, the symbol with no inner value.
func Escape[I comparable, A any]() Symbol[I, A] {
	return Symbol[I, A]{}
}

// EscapeWithAttribute returns rho carrying the given attribute (its
// occurrence counter in a context's symbol table).
func EscapeWithAttribute[I comparable, A any](attr A) Symbol[I, A] {
	return Symbol[I, A]{attribute: attr, hasAttribute: true}
}

// IsEscape reports whether s is rho, i.e. carries no inner value.
func (s Symbol[I, A]) IsEscape() bool {
	return !s.hasInner
}

// Inner returns the inner value and whether one is present. Calling Inner
// on rho returns the zero value of I and false.
func (s Symbol[I, A]) Inner() (I, bool) {
	return s.inner, s.hasInner
}

// MustInner returns the inner value, panicking if s is rho. Callers that
// have already excluded the escape case via IsEscape should use this.
func (s Symbol[I, A]) MustInner() I {
	if !s.hasInner {
		panic("symbol: MustInner called on the escape symbol")
	}
	return s.inner
}

// Attribute returns the attribute and whether one is present.
func (s Symbol[I, A]) Attribute() (A, bool) {
	return s.attribute, s.hasAttribute
}

// MustAttribute returns the attribute, panicking if none was set.
func (s Symbol[I, A]) MustAttribute() A {
	if !s.hasAttribute {
		panic("symbol: MustAttribute called on a symbol with no attribute")
	}
	return s.attribute
}

// SetAttribute returns a copy of s with attribute replaced by attr.
// Equality never considers the attribute, so this never changes identity.
func (s Symbol[I, A]) SetAttribute(attr A) Symbol[I, A] {
	s.attribute = attr
	s.hasAttribute = true
	return s
}

// Equal reports whether s and o denote the same symbol: both rho, or both
// concrete with equal inner values. The attribute never participates in
// equality.
func (s Symbol[I, A]) Equal(o Symbol[I, A]) bool {
	if s.hasInner != o.hasInner {
		return false
	}
	if !s.hasInner {
		return true // both rho
	}
	return s.inner == o.inner
}
