// Package huffman builds a CodeTree by repeatedly merging the two
// lowest-weight roots of a forest, with a fully specified tie-break
// order so that two runs over the same multiset of (symbol, count)
// pairs produce byte-identical trees.
package huffman

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/mororo18/compadre/codetree"
	"github.com/mororo18/compadre/symbol"
)

// greaterThan implements the total order from the spec: a outranks b
// (greaterThan(a,b) is true) when:
//  1. a's weight is larger, or
//  2. weights tie and both roots carry a symbol: the escape symbol
//     outranks any concrete symbol; otherwise the lexicographically
//     smaller inner value outranks, or
//  3. weights tie and exactly one root carries a symbol: the one with a
//     symbol outranks the branch.
func greaterThan[I cmp.Ordered](a, b *codetree.CodeTree[I]) bool {
	ra, rb := a.Root(), b.Root()
	if ra.Weight() != rb.Weight() {
		return ra.Weight() > rb.Weight()
	}
	aLeaf, bLeaf := ra.IsLeaf(), rb.IsLeaf()
	if aLeaf && bLeaf {
		as, bs := ra.Symbol(), rb.Symbol()
		if as.IsEscape() != bs.IsEscape() {
			return as.IsEscape() // rho outranks any concrete symbol
		}
		if as.IsEscape() && bs.IsEscape() {
			return false // both rho: no order between them
		}
		ai, _ := as.Inner()
		bi, _ := bs.Inner()
		return ai < bi // smaller inner value outranks
	}
	return aLeaf // the leaf outranks the branch
}

// merge builds a new tree whose root is a fresh branch with weight
// left.weight+right.weight, left subtree left, right subtree right. The
// branch is pushed before either subtree is appended, so it always lands
// at index 0: the root-at-zero invariant every CodeTree consumer relies
// on holds for Huffman trees exactly as it does for Shannon-Fano ones.
func merge[I cmp.Ordered](left, right *codetree.CodeTree[I]) *codetree.CodeTree[I] {
	weight := left.Root().Weight() + right.Root().Weight()
	out := codetree.New[I]()
	rootIdx := out.PushBranch(weight)
	leftRoot := out.AppendTree(left)
	rightRoot := out.AppendTree(right)
	out.AddLeftChild(rootIdx, leftRoot)
	out.AddRightChild(rootIdx, rightRoot)
	return out
}

// Coder adapts Build to the model.Coder interface the driver consumes.
type Coder struct{}

// BuildTree implements model.Coder.
func (Coder) BuildTree(dist symbol.SymbolList[byte, int]) (*codetree.CodeTree[byte], error) {
	return Build(dist)
}

// Build constructs a CodeTree from a SymbolList whose attribute holds
// non-negative occurrence counts. Every symbol in dist, including the
// escape symbol if present, becomes a single-leaf tree in the initial
// forest; forests of size 1 terminate the loop and that tree is
// returned.
func Build[I cmp.Ordered](dist symbol.SymbolList[I, int]) (*codetree.CodeTree[I], error) {
	if dist.Size() == 0 {
		return nil, fmt.Errorf("huffman: empty symbol list")
	}

	forest := make([]*codetree.CodeTree[I], 0, dist.Size())
	for _, s := range dist.Items() {
		count, _ := s.Attribute()
		forest = append(forest, codetree.NewLeaf(s, count))
	}

	for len(forest) > 1 {
		sort.SliceStable(forest, func(i, j int) bool {
			return greaterThan(forest[i], forest[j])
		})
		last := len(forest) - 1
		ultimo := forest[last]
		penultimo := forest[last-1]
		forest = forest[:last-1]
		forest = append(forest, merge(penultimo, ultimo))
	}

	return forest[0], nil
}
