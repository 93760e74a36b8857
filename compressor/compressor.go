// Package compressor implements the driver that turns a message and a
// model.Model/model.Coder pair into a compadre container, and back.
//
// For every message symbol, the driver asks the model for its ordered
// encoding list (zero or more escape steps followed by a final concrete
// step), builds a fresh code tree over each step's distribution, and
// writes the symbol's code word to the bit stream. Decoding mirrors this
// exactly: build a tree over the model's current distribution, decode
// one symbol, report it back to the model, and repeat until a concrete
// symbol resolves the round. The container's header counts these
// pair-decodes directly — every ρ escape plus every concrete symbol —
// not the number of bytes in the original message.
package compressor

import (
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/mororo18/compadre/bitstream"
	"github.com/mororo18/compadre/codetree"
	"github.com/mororo18/compadre/model"
	"github.com/mororo18/compadre/symbol"
)

// Compress encodes message against m and c, returning a self-contained
// container: a 4-byte little-endian pair count followed by the bit body.
// The count is the number of (symbol, distribution) pairs emitted across
// the whole message — every ρ escape plus every concrete symbol, not the
// number of bytes in message — since that is what Decompress must step
// through one pair-decode at a time to know when to stop.
func Compress(message []byte, m model.Model, c model.Coder) ([]byte, error) {
	if m == nil || c == nil {
		return nil, errors.Wrap(ErrConfiguration, "compressor: Compress requires a model and a coder")
	}
	if len(message) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInputTooLarge, "compressor: message of %d bytes exceeds u32 count", len(message))
	}

	var body bytes.Buffer
	bw := bitstream.NewWriter(&body)
	var pairCount uint32

	for _, raw := range message {
		sym := symbol.New[byte, int](raw)
		for _, step := range m.Emit(sym) {
			tree, err := c.BuildTree(step.Dist)
			if err != nil {
				return nil, errors.Wrap(err, "compressor: building tree over model distribution")
			}
			code := tree.CodeMap()
			cw, ok := code.Get(step.Symbol)
			if !ok {
				return nil, errors.Errorf("compressor: model distribution has no code word for its own encoding-list symbol")
			}
			cw.ReverseValidBits()
			for _, bit := range cw.EmissionBits() {
				if err := bw.WriteBit(bit); err != nil {
					return nil, errors.Wrap(err, "compressor: writing bit")
				}
			}
			pairCount++
		}
	}

	if err := bw.Close(); err != nil {
		return nil, errors.Wrap(err, "compressor: closing bit writer")
	}

	var out bytes.Buffer
	hw := bitstream.NewWriter(&out)
	if err := hw.WriteU32(pairCount); err != nil {
		return nil, errors.Wrap(err, "compressor: writing header")
	}
	if err := hw.Close(); err != nil {
		return nil, errors.Wrap(err, "compressor: closing header writer")
	}
	out.Write(body.Bytes())

	return out.Bytes(), nil
}

// Decompress reverses Compress: it reads the pair count header, then
// performs exactly that many pair-decodes — each one builds a tree over
// m's current distribution, decodes one symbol from it, and reports the
// result back to m — appending a byte to the output only when the
// decoded symbol is concrete (a ρ escape contributes no output byte but
// still counts as one of the count pair-decodes).
func Decompress(data []byte, m model.Model, c model.Coder) ([]byte, error) {
	if m == nil || c == nil {
		return nil, errors.Wrap(ErrConfiguration, "compressor: Decompress requires a model and a coder")
	}

	r := bytes.NewReader(data)
	hr := bitstream.NewReader(r)
	count, err := hr.ReadU32()
	if err != nil {
		return nil, errors.Wrap(ErrDesync, "compressor: container too short to hold a symbol count header")
	}

	br := bitstream.NewReader(r)
	out := make([]byte, 0, count)

	for i := uint32(0); i < count; i++ {
		dist := m.CurrentDistribution()
		tree, err := c.BuildTree(dist)
		if err != nil {
			return nil, errors.Wrap(err, "compressor: building tree over model distribution")
		}
		sym, err := tree.Decode(br.ReadBit)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, errors.Wrap(ErrDesync, "compressor: bit stream ended before declared pair count was decoded")
			}
			if errors.Is(err, codetree.ErrDesync) {
				return nil, errors.Wrap(ErrDesync, "compressor: decoded tree walk reached a nonexistent child")
			}
			return nil, errors.Wrap(err, "compressor: decoding symbol")
		}

		m.Observe(sym)
		if !sym.IsEscape() {
			out = append(out, sym.MustInner())
		}
	}

	return out, nil
}
