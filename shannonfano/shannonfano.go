// Package shannonfano builds a CodeTree by recursive weight-balanced
// splitting of a sorted SymbolList, per Shannon and Fano's top-down
// construction.
package shannonfano

import (
	"fmt"

	"github.com/mororo18/compadre/codetree"
	"github.com/mororo18/compadre/symbol"
)

type stackItem[I comparable] struct {
	nodeIndex int
	list      symbol.SymbolList[I, int]
}

func sumWeights[I comparable](list *symbol.SymbolList[I, int]) int {
	total := 0
	for _, s := range list.Items() {
		total += s.MustAttribute()
	}
	return total
}

// split finds the index i such that taking items [0..i] on the left and
// (i..] on the right minimizes |half - prefixSum(i)|, breaking ties by
// the first minimizing index. It is defined for n >= 2 and never
// returns n-1 (the right side is never empty).
func split[I comparable](list *symbol.SymbolList[I, int], total int) int {
	half := total / 2
	best := 0
	bestDiff := -1
	running := 0
	items := list.Items()
	for i := 0; i < len(items)-1; i++ {
		running += items[i].MustAttribute()
		diff := half - running
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// Coder adapts Build to the model.Coder interface the driver consumes.
type Coder struct{}

// BuildTree implements model.Coder.
func (Coder) BuildTree(dist symbol.SymbolList[byte, int]) (*codetree.CodeTree[byte], error) {
	return Build(dist)
}

// Build constructs a CodeTree over list, a SymbolList whose attribute
// holds positive integer weights. list need not be pre-sorted; Build
// sorts its own copy. A zero total weight is a programming error.
func Build[I comparable](list symbol.SymbolList[I, int]) (*codetree.CodeTree[I], error) {
	work := list.Clone()
	work.SortByAttribute()

	if work.Size() == 0 {
		return nil, fmt.Errorf("shannonfano: empty symbol list")
	}

	total := sumWeights(&work)
	if total == 0 {
		panic("shannonfano: zero total weight")
	}

	tree := codetree.New[I]()

	if work.Size() == 1 {
		tree.PushLeaf(work.At(0), work.At(0).MustAttribute())
		return tree, nil
	}

	rootIdx := tree.PushBranch(total)
	stack := []stackItem[I]{{nodeIndex: rootIdx, list: work}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !item.list.IsSorted() {
			panic("shannonfano: work list not sorted")
		}

		listTotal := sumWeights(&item.list)
		i := split(&item.list, listTotal)

		leftItems := item.list.Items()[:i+1]
		rightItems := item.list.Items()[i+1:]

		attach := func(items []symbol.Symbol[I, int], isLeft bool) {
			if len(items) == 1 {
				leafIdx := tree.PushLeaf(items[0], items[0].MustAttribute())
				if isLeft {
					tree.AddLeftChild(item.nodeIndex, leafIdx)
				} else {
					tree.AddRightChild(item.nodeIndex, leafIdx)
				}
				return
			}
			sub := symbol.NewList(items...)
			sum := sumWeights(&sub)
			branchIdx := tree.PushBranch(sum)
			if isLeft {
				tree.AddLeftChild(item.nodeIndex, branchIdx)
			} else {
				tree.AddRightChild(item.nodeIndex, branchIdx)
			}
			stack = append(stack, stackItem[I]{nodeIndex: branchIdx, list: sub})
		}

		attach(leftItems, true)
		attach(rightItems, false)
	}

	return tree, nil
}
