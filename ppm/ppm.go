// Package ppm implements the order-K adaptive Prediction-by-Partial-
// Matching model: per input symbol it walks contexts from the longest
// currently tracked down to order 0, escaping (rho) through any context
// that does not yet know the symbol, and falls back to an equiprobable
// list of still-unseen alphabet symbols when no context applies.
//
// The encoder and decoder sides share a single update routine
// (ppm.update), since keeping their context tables in lockstep is the
// one place a divergence is both easy to introduce and invisible until a
// later symbol decodes wrong.
package ppm

import (
	"github.com/mororo18/compadre/model"
	"github.com/mororo18/compadre/symbol"
)

// context holds the symbol table (counts, including rho) for one
// particular order-k suffix of the message seen so far.
type context struct {
	table model.Dist
}

// Model is an order-K adaptive PPM model over a byte alphabet.
type Model struct {
	alphabet []byte
	order    int
	buckets  []map[string]*context
	eqProb   model.Dist

	currentCtx []byte // front = most recently observed symbol; len <= order

	// Decode-round state: which order CurrentDistribution last returned
	// a table from, and the ceiling order still eligible to try (escapes
	// lower the ceiling so the same order is never retried this round).
	roundActive bool
	roundCeil   int
	lastOrder   int
}

// New builds a PPM model of context order K over alphabet, starting from
// the "state at rest": every context bucket empty, eqProb holding every
// alphabet symbol with count 1, and an empty current context.
func New(alphabet []byte, order int) *Model {
	if order < 0 {
		panic("ppm: negative context order")
	}
	m := &Model{
		alphabet: append([]byte(nil), alphabet...),
		order:    order,
		buckets:  make([]map[string]*context, order+1),
	}
	for i := range m.buckets {
		m.buckets[i] = make(map[string]*context)
	}
	for _, c := range alphabet {
		m.eqProb.Push(symbol.NewWithAttribute[byte, int](c, 1))
	}
	return m
}

func (m *Model) getContext(k int) (*context, bool) {
	key := string(m.currentCtx[:k])
	c, ok := m.buckets[k][key]
	return c, ok
}

func (m *Model) startOrder() int {
	if len(m.currentCtx) < m.order {
		return len(m.currentCtx)
	}
	return m.order
}

// Emit implements model.Model's encoder-side operation.
func (m *Model) Emit(s model.Sym) []model.EncodingStep {
	var path []model.EncodingStep
	found := false

	for k := m.startOrder(); k >= 0; k-- {
		ctx, ok := m.getContext(k)
		if !ok {
			continue
		}
		if ctx.table.Contains(s) {
			path = append(path, model.EncodingStep{Symbol: s, Dist: ctx.table.Clone()})
			found = true
			break
		}
		path = append(path, model.EncodingStep{
			Symbol: symbol.Escape[byte, int](),
			Dist:   ctx.table.Clone(),
		})
	}

	if !found {
		path = append(path, model.EncodingStep{Symbol: s, Dist: m.eqProb.Clone()})
	}

	m.update(s.MustInner())
	return path
}

// CurrentDistribution implements model.Model's decoder-side operation.
// It returns the distribution of the largest-order existing context at
// or below the current round's ceiling order, or eqProb if none applies.
func (m *Model) CurrentDistribution() model.Dist {
	if !m.roundActive {
		m.roundCeil = m.startOrder()
		m.roundActive = true
	}
	for k := m.roundCeil; k >= 0; k-- {
		if ctx, ok := m.getContext(k); ok {
			m.lastOrder = k
			return ctx.table.Clone()
		}
	}
	m.lastOrder = -1
	return m.eqProb.Clone()
}

// Observe implements model.Model's decoder-side operation. A decoded
// escape narrows the round's ceiling so the next CurrentDistribution
// call skips every order that already escaped; a decoded concrete symbol
// ends the round and runs the shared update.
func (m *Model) Observe(s model.Sym) {
	if s.IsEscape() {
		m.roundCeil = m.lastOrder - 1
		return
	}
	m.update(s.MustInner())
	m.roundActive = false
}

// update applies the shared encoder/decoder discipline for one fully
// resolved message symbol s: for every order from the current context's
// full length down to 0, create the order's context if absent
// (initializing it with rho before the first increment) or find s in
// it, incrementing s's count if present, else adding s at count 1 and
// incrementing rho. Finally s is pushed onto current_ctx (dropping the
// tail past the context order) and, on its first ever concrete
// occurrence, removed from eqProb.
//
// This single top-down pass runs exactly once per message symbol, on
// both the encoder and the decoder, which is what keeps their context
// tables in lockstep regardless of how many orders escaped along the
// way to find (or fail to find) s.
func (m *Model) update(s byte) {
	sym := symbol.New[byte, int](s)

	for k := m.startOrder(); k >= 0; k-- {
		key := string(m.currentCtx[:k])
		ctx, ok := m.buckets[k][key]
		if !ok {
			ctx = &context{}
			ctx.table.Push(symbol.EscapeWithAttribute[byte, int](0))
			incRho(&ctx.table)
			ctx.table.Push(symbol.NewWithAttribute[byte, int](s, 1))
			m.buckets[k][key] = ctx
			continue
		}
		if idx := ctx.table.PositionOf(sym); idx >= 0 {
			cur := ctx.table.At(idx)
			ctx.table.Set(idx, cur.SetAttribute(cur.MustAttribute()+1))
		} else {
			ctx.table.Push(symbol.NewWithAttribute[byte, int](s, 1))
			incRho(&ctx.table)
		}
	}

	if m.eqProb.Contains(sym) {
		m.eqProb.Remove(sym)
	}

	m.currentCtx = append([]byte{s}, m.currentCtx...)
	if len(m.currentCtx) > m.order {
		m.currentCtx = m.currentCtx[:m.order]
	}
}

func incRho(table *model.Dist) {
	idx := table.PositionOf(symbol.Escape[byte, int]())
	cur := table.At(idx)
	table.Set(idx, cur.SetAttribute(cur.MustAttribute()+1))
}
