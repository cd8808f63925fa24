package mesh

import (
	"sort"

	"github.com/voltlab/strata/internal/core/domain"
)

// tileCover chops region into blockSize tiles aligned to the tiling of
// bound, clipped to region.
func tileCover(region, bound domain.Box, blockSize, dim int) []domain.Box {
	if region.IsEmpty() {
		return nil
	}

	var loTile, hiTile domain.IntVect
	for d := 0; d < dim; d++ {
		loTile[d] = floorDiv(region.Lo[d], blockSize)
		hiTile[d] = floorDiv(region.Hi[d], blockSize)
	}

	var boxes []domain.Box
	walkRange(loTile, hiTile, dim, func(key domain.IntVect) {
		var lo, hi domain.IntVect
		for d := 0; d < dim; d++ {
			lo[d] = key[d] * blockSize
			hi[d] = (key[d]+1)*blockSize - 1
		}
		tile, ok := domain.NewBox(lo, hi).Intersect(region)
		if !ok {
			return
		}
		if clipped, ok := tile.Intersect(bound); ok {
			boxes = append(boxes, clipped)
		}
	})
	return boxes
}

// walkRange visits every index in the inclusive range [lo, hi], x fastest.
func walkRange(lo, hi domain.IntVect, dim int, fn func(domain.IntVect)) {
	iv := lo
	for {
		fn(iv)
		d := 0
		for d < dim {
			iv[d]++
			if iv[d] <= hi[d] {
				break
			}
			iv[d] = lo[d]
			d++
		}
		if d == dim {
			return
		}
	}
}

// walkRefined visits the ratio-wide refined footprint starting at lo.
func walkRefined(lo domain.IntVect, ratio, dim int, fn func(domain.IntVect)) {
	hi := lo
	for d := 0; d < dim; d++ {
		hi[d] += ratio - 1
	}
	walkRange(lo, hi, dim, fn)
}

// sortVects orders vectors lexicographically so tile traversal is
// deterministic across ranks.
func sortVects(vs []domain.IntVect) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
