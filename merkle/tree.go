// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/fault"
)

// tree structure in a layer is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. root digest
//
// an odd node at the end of a level is paired with itself

// TreeSize - nodes in a tree of leafCount leaves, root included
func TreeSize(leafCount int) int {
	total := 1
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		total += n
	}
	return total
}

// PairCount - parent nodes to be computed
func PairCount(leafCount int) int {
	return TreeSize(leafCount) - leafCount
}

// Rounds - invocations needed at pairsPerRound parents each
func Rounds(leafCount int, pairsPerRound int) uint64 {
	if pairsPerRound <= 0 || leafCount <= 1 {
		return 0
	}
	pairs := PairCount(leafCount)
	return uint64((pairs + pairsPerRound - 1) / pairsPerRound)
}

// Tree - every node of the tree computed at once
func Tree(leaves []Digest) []Digest {
	tree := make([]Digest, TreeSize(len(leaves)))
	copy(tree, leaves)

	n := len(leaves)
	j := 0
	for width := len(leaves); width > 1; width = (width + 1) / 2 {
		for i := 0; i < width; i += 2 {
			k := j + 1
			if i+1 == width {
				k = j
			}
			tree[n] = Pair(tree[j], tree[k])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// HashRound - compute the parents belonging to one round
//
// parents are numbered level by level from the bottom, round r computes
// parents [r*pairsPerRound, (r+1)*pairsPerRound); earlier rounds must
// already have been hashed
func HashRound(layer *bigarray.Array[Digest], leafCount int, round uint64, pairsPerRound int) error {
	if leafCount <= 0 || pairsPerRound <= 0 || layer.Len() < TreeSize(leafCount) {
		return fault.ErrInvalidRange
	}
	if round >= Rounds(leafCount, pairsPerRound) {
		return fault.ErrInvalidRange
	}

	first := int(round) * pairsPerRound
	last := first + pairsPerRound
	if pairs := PairCount(leafCount); last > pairs {
		last = pairs
	}

	// find the level holding the first parent
	start := 0
	width := leafCount
	base := 0
	for base+(width+1)/2 <= first {
		base += (width + 1) / 2
		start += width
		width = (width + 1) / 2
	}

	for p := first; p < last; p += 1 {
		q := p - base
		if q >= (width+1)/2 {
			base += (width + 1) / 2
			start += width
			width = (width + 1) / 2
			q = 0
		}
		j := start + 2*q
		k := j + 1
		if 2*q+1 == width {
			k = j
		}
		layer.Set(start+width+q, Pair(layer.Get(j), layer.Get(k)))
	}
	return nil
}

// Root - last node of a fully hashed layer
func Root(layer *bigarray.Array[Digest], leafCount int) Digest {
	return layer.Get(TreeSize(leafCount) - 1)
}
