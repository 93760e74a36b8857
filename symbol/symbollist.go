package symbol

import (
	"cmp"
	"sort"
)

// SymbolList is an ordered, owned sequence of symbols. Operations that
// assume sortedness (see IsSorted) are the caller's responsibility to
// have established; violating that precondition is a programming error
// in the same sense as an out-of-range index.
type SymbolList[I comparable, A cmp.Ordered] struct {
	items []Symbol[I, A]
}

// NewList builds a SymbolList from the given symbols, in order.
func NewList[I comparable, A cmp.Ordered](items ...Symbol[I, A]) SymbolList[I, A] {
	out := SymbolList[I, A]{items: make([]Symbol[I, A], len(items))}
	copy(out.items, items)
	return out
}

// Size returns the number of symbols in the list.
func (l *SymbolList[I, A]) Size() int {
	return len(l.items)
}

// Push appends s to the end of the list.
func (l *SymbolList[I, A]) Push(s Symbol[I, A]) {
	l.items = append(l.items, s)
}

// PushFront prepends s to the list.
func (l *SymbolList[I, A]) PushFront(s Symbol[I, A]) {
	l.items = append(l.items, Symbol[I, A]{})
	copy(l.items[1:], l.items)
	l.items[0] = s
}

// At returns the symbol at position i. Out of range is a programming
// error: it panics, since a caller asking for an invalid index has a bug.
func (l *SymbolList[I, A]) At(i int) Symbol[I, A] {
	if i < 0 || i >= len(l.items) {
		panic("symbol: SymbolList.At index out of range")
	}
	return l.items[i]
}

// Set overwrites the symbol at position i.
func (l *SymbolList[I, A]) Set(i int, s Symbol[I, A]) {
	if i < 0 || i >= len(l.items) {
		panic("symbol: SymbolList.Set index out of range")
	}
	l.items[i] = s
}

// PositionOf returns the index of the first symbol equal to s, or -1.
func (l *SymbolList[I, A]) PositionOf(s Symbol[I, A]) int {
	for i, x := range l.items {
		if x.Equal(s) {
			return i
		}
	}
	return -1
}

// Contains reports whether s (by Equal) is present in the list.
func (l *SymbolList[I, A]) Contains(s Symbol[I, A]) bool {
	return l.PositionOf(s) >= 0
}

// Remove deletes the first symbol equal to s using a last-element swap,
// i.e. it does not preserve order. It is a programming error to remove an
// absent symbol.
func (l *SymbolList[I, A]) Remove(s Symbol[I, A]) {
	i := l.PositionOf(s)
	if i < 0 {
		panic("symbol: SymbolList.Remove: symbol not present")
	}
	last := len(l.items) - 1
	l.items[i] = l.items[last]
	l.items = l.items[:last]
}

// RemoveAt deletes the symbol at position i, preserving the order of the
// remaining elements.
func (l *SymbolList[I, A]) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		panic("symbol: SymbolList.RemoveAt index out of range")
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// SortByAttribute reorders the list non-decreasing by attribute. Symbols
// with no attribute set sort as their type's zero value.
func (l *SymbolList[I, A]) SortByAttribute() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].attribute < l.items[j].attribute
	})
}

// IsSorted reports whether the list is already non-decreasing by
// attribute.
func (l *SymbolList[I, A]) IsSorted() bool {
	for i := 1; i < len(l.items); i++ {
		if l.items[i].attribute < l.items[i-1].attribute {
			return false
		}
	}
	return true
}

// Items returns the underlying slice of symbols, in order. Callers must
// not retain it across a mutating call (Push, Remove, ...).
func (l *SymbolList[I, A]) Items() []Symbol[I, A] {
	return l.items
}

// Each calls fn for every symbol in order.
func (l *SymbolList[I, A]) Each(fn func(i int, s Symbol[I, A])) {
	for i, s := range l.items {
		fn(i, s)
	}
}

// Clone returns an independent copy of the list.
func (l *SymbolList[I, A]) Clone() SymbolList[I, A] {
	out := SymbolList[I, A]{items: make([]Symbol[I, A], len(l.items))}
	copy(out.items, l.items)
	return out
}
