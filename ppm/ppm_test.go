package ppm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mororo18/compadre/model"
	"github.com/mororo18/compadre/ppm"
	"github.com/mororo18/compadre/symbol"
)

type distKey struct {
	escape bool
	inner  byte
}

func distToMap(d model.Dist) map[distKey]int {
	out := make(map[distKey]int)
	d.Each(func(_ int, s model.Sym) {
		k := distKey{escape: s.IsEscape()}
		if !s.IsEscape() {
			k.inner = s.MustInner()
		}
		out[k] = s.MustAttribute()
	})
	return out
}

func TestEmitScenarioAII(t *testing.T) {
	m := ppm.New([]byte{'A', 'I'}, 0)

	stepsA := m.Emit(symbol.New[byte, int]('A'))
	require.Len(t, stepsA, 1)
	assert.False(t, stepsA[0].Symbol.IsEscape())
	assert.Equal(t, byte('A'), stepsA[0].Symbol.MustInner())
	assert.Equal(t, map[distKey]int{{inner: 'A'}: 1, {inner: 'I'}: 1}, distToMap(stepsA[0].Dist),
		"first A has no context yet, so it is emitted against eq_prob_list")

	stepsI1 := m.Emit(symbol.New[byte, int]('I'))
	require.Len(t, stepsI1, 2)
	assert.True(t, stepsI1[0].Symbol.IsEscape())
	assert.Equal(t, map[distKey]int{{escape: true}: 1, {inner: 'A'}: 1}, distToMap(stepsI1[0].Dist),
		"order-0 table after observing A is {rho:1, A:1}")
	assert.Equal(t, byte('I'), stepsI1[1].Symbol.MustInner())
	assert.Equal(t, map[distKey]int{{inner: 'I'}: 1}, distToMap(stepsI1[1].Dist),
		"eq_prob_list has A removed after its first occurrence")

	stepsI2 := m.Emit(symbol.New[byte, int]('I'))
	require.Len(t, stepsI2, 1)
	assert.Equal(t, byte('I'), stepsI2[0].Symbol.MustInner())
	assert.Equal(t, map[distKey]int{{escape: true}: 2, {inner: 'A'}: 1, {inner: 'I'}: 1}, distToMap(stepsI2[0].Dist),
		"second I is found directly in the now-populated order-0 table")
}

// decodeAlongside drives a second model's decoder-side operations using the
// encoding list a first model's Emit produced, the way compressor.Decompress
// drives a real Coder/tree in lockstep with the bit stream.
func decodeAlongside(t *testing.T, dec model.Model, steps []model.EncodingStep) symbol.Symbol[byte, int] {
	t.Helper()
	for _, step := range steps {
		got := dec.CurrentDistribution()
		assert.Equal(t, distToMap(step.Dist), distToMap(got), "decoder distribution must match encoder distribution at each step")
		dec.Observe(step.Symbol)
	}
	return steps[len(steps)-1].Symbol
}

func TestEncodeDecodeSymmetryOrderZero(t *testing.T) {
	message := []byte("AII")
	enc := ppm.New([]byte{'A', 'I'}, 0)
	dec := ppm.New([]byte{'A', 'I'}, 0)

	var decoded []byte
	for _, b := range message {
		steps := enc.Emit(symbol.New[byte, int](b))
		sym := decodeAlongside(t, dec, steps)
		decoded = append(decoded, sym.MustInner())
	}

	assert.Equal(t, message, decoded)
}

func TestEncodeDecodeSymmetryHigherOrder(t *testing.T) {
	message := []byte("ABABABA")
	alphabet := []byte{'A', 'B', 'C'}
	enc := ppm.New(alphabet, 2)
	dec := ppm.New(alphabet, 2)

	var decoded []byte
	for _, b := range message {
		steps := enc.Emit(symbol.New[byte, int](b))
		sym := decodeAlongside(t, dec, steps)
		decoded = append(decoded, sym.MustInner())
	}

	assert.Equal(t, message, decoded)
}

func TestNewPanicsOnNegativeOrder(t *testing.T) {
	assert.Panics(t, func() { ppm.New([]byte{'A'}, -1) })
}
