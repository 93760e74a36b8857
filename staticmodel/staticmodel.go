// Package staticmodel implements a non-adaptive probability model: one
// fixed weighted distribution over the whole alphabet, used to drive a
// Shannon-Fano or Huffman coder without any contextual escape/update
// machinery.
package staticmodel

import (
	"fmt"

	"github.com/mororo18/compadre/model"
	"github.com/mororo18/compadre/symbol"
)

// Model is a probability model whose distribution never changes.
type Model struct {
	dist model.Dist
}

// New builds a static model over alphabet, weighting each symbol by
// weights[symbol]. Every symbol in alphabet must have a positive weight.
func New(alphabet []byte, weights map[byte]int) (*Model, error) {
	var dist model.Dist
	for _, c := range alphabet {
		w, ok := weights[c]
		if !ok || w <= 0 {
			return nil, fmt.Errorf("staticmodel: symbol %q has no positive weight", c)
		}
		dist.Push(symbol.NewWithAttribute[byte, int](c, w))
	}
	return &Model{dist: dist}, nil
}

// Emit implements model.Model: the static model's encoding list is
// always the single pair (s, full-alphabet-with-weights).
func (m *Model) Emit(s model.Sym) []model.EncodingStep {
	return []model.EncodingStep{{Symbol: s, Dist: m.dist.Clone()}}
}

// CurrentDistribution implements model.Model.
func (m *Model) CurrentDistribution() model.Dist {
	return m.dist.Clone()
}

// Observe implements model.Model; the static model ignores it.
func (m *Model) Observe(model.Sym) {}
