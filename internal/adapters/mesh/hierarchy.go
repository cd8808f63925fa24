// Package mesh provides the reference mesh hierarchy: tile-based grid
// generation with proper nesting and round-robin load balancing. It is the
// bundled implementation of the hierarchy port; solver frameworks with their
// own grid generators plug in behind the same interface.
package mesh

import (
	"context"
	"sync"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Hierarchy implements ports.MeshHierarchy. All mutating calls are
// collective; every rank runs the identical deterministic grid generation on
// the globally combined tags, so the layouts agree without ever shipping
// boxes between ranks.
type Hierarchy struct {
	cfg  domain.MeshConfig
	comm ports.Comm
	log  ports.Logger

	domains []domain.Box
	dxs     []float64

	mu    sync.RWMutex
	grids []domain.Layout
}

// New builds a hierarchy with level 0 decomposed over the ranks. Finer levels
// appear on the first regrid.
func New(cfg domain.MeshConfig, comm ports.Comm, log ports.Logger) *Hierarchy {
	domains := make([]domain.Box, cfg.MaxDepth+1)
	dxs := make([]float64, cfg.MaxDepth+1)
	domains[0] = cfg.DomainBox()
	dxs[0] = cfg.CoarsestDx()
	for lvl := 1; lvl <= cfg.MaxDepth; lvl++ {
		ratio := cfg.RefRatios[lvl-1]
		domains[lvl] = domains[lvl-1].Refine(ratio)
		dxs[lvl] = dxs[lvl-1] / float64(ratio)
	}

	h := &Hierarchy{
		cfg:     cfg,
		comm:    comm,
		log:     log,
		domains: domains,
		dxs:     dxs,
	}
	h.grids = []domain.Layout{h.decomposeDomain(0)}
	return h
}

// decomposeDomain tiles a level's full domain into blocks.
func (h *Hierarchy) decomposeDomain(level int) domain.Layout {
	tiles := tileCover(h.domains[level], h.domains[level], h.cfg.BlockSize, h.cfg.Dim)
	return h.balance(tiles)
}

// balance assigns tile owners round-robin in deterministic tile order.
func (h *Hierarchy) balance(boxes []domain.Box) domain.Layout {
	owners := make([]int, len(boxes))
	size := h.comm.Size()
	for i := range owners {
		owners[i] = i % size
	}
	return domain.Layout{Boxes: boxes, Owners: owners}
}

// Regrid rebuilds levels [lmin, lmax]. Tags are rank-local on entry; they are
// gathered level by level so every rank clusters the same global set.
func (h *Hierarchy) Regrid(ctx context.Context, tags []domain.CellSet, lmin, lmax, regionSize, maxNewFinest int) error {
	global, err := h.gatherTags(ctx, tags, lmax)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if lmin < 0 {
		lmin = 0
	}
	top := min(h.cfg.MaxDepth, maxNewFinest)

	newGrids := make([]domain.Layout, 0, top+1)
	for lvl := 0; lvl < lmin && lvl < len(h.grids); lvl++ {
		newGrids = append(newGrids, h.grids[lvl])
	}
	if lmin == 0 {
		newGrids = append(newGrids, h.decomposeDomain(0))
		lmin = 1
	}

	for lvl := lmin; lvl <= top; lvl++ {
		coarse := newGrids[lvl-1]
		seeds := global[lvl-1]

		// Proper nesting: a fine cell may only exist over refined coarse
		// cells that are themselves part of the coarse layout.
		nested := make(domain.CellSet)
		for cell := range seeds {
			if coarse.PatchOf(cell) >= 0 {
				nested.Add(cell)
			}
		}
		if regionSize > 0 {
			nested = nested.Grow(regionSize, h.domains[lvl-1])
			for cell := range nested {
				if coarse.PatchOf(cell) < 0 {
					nested.Remove(cell)
				}
			}
		}
		if nested.IsEmpty() {
			break
		}

		layout := h.balance(h.cluster(nested, lvl))
		newGrids = append(newGrids, layout)
	}

	h.grids = newGrids
	h.log.Debug("mesh regridded", "finest_level", len(newGrids)-1)
	return nil
}

// gatherTags combines each rank's local tags into the global per-level sets.
// One collective per level, same order on every rank.
func (h *Hierarchy) gatherTags(ctx context.Context, tags []domain.CellSet, lmax int) ([]domain.CellSet, error) {
	levels := min(lmax+1, h.cfg.MaxDepth)
	global := make([]domain.CellSet, levels)
	for lvl := range global {
		var local []domain.IntVect
		if lvl < len(tags) && tags[lvl] != nil {
			local = tags[lvl].Cells()
		}
		all, err := h.comm.AllGatherCells(ctx, local)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "tag gather failed"), "level", lvl)
		}
		global[lvl] = domain.NewCellSet(all...)
	}
	return global, nil
}

// cluster turns tagged coarse cells into a fine-level box list: the fine
// domain is tiled into blocks and every tile touched by a refined tag cell
// becomes a box. Tiles filled below the configured fill ratio shrink to the
// bounding box of their tagged cells so sparse tags do not drag whole blocks
// of wasted cells along.
func (h *Hierarchy) cluster(coarseTags domain.CellSet, level int) []domain.Box {
	ratio := h.cfg.RefRatios[level-1]
	fineDomain := h.domains[level]
	bs := h.cfg.BlockSize

	type tileInfo struct {
		cells domain.CellSet
	}
	tiles := make(map[domain.IntVect]*tileInfo)

	for cell := range coarseTags {
		// The refined footprint of one coarse cell.
		lo := cell
		for d := 0; d < h.cfg.Dim; d++ {
			lo[d] *= ratio
		}
		walkRefined(lo, ratio, h.cfg.Dim, func(iv domain.IntVect) {
			var key domain.IntVect
			for d := 0; d < h.cfg.Dim; d++ {
				key[d] = floorDiv(iv[d], bs)
			}
			t := tiles[key]
			if t == nil {
				t = &tileInfo{cells: make(domain.CellSet)}
				tiles[key] = t
			}
			t.cells.Add(iv)
		})
	}

	keys := make([]domain.IntVect, 0, len(tiles))
	for key := range tiles {
		keys = append(keys, key)
	}
	sortVects(keys)

	boxes := make([]domain.Box, 0, len(keys))
	for _, key := range keys {
		var lo, hi domain.IntVect
		for d := 0; d < h.cfg.Dim; d++ {
			lo[d] = key[d] * bs
			hi[d] = (key[d]+1)*bs - 1
		}
		tile, ok := domain.NewBox(lo, hi).Intersect(fineDomain)
		if !ok {
			continue
		}

		t := tiles[key]
		occupancy := float64(t.cells.Len()) / float64(tile.NumCells())
		if occupancy < h.cfg.FillRatio {
			if bb, ok := t.cells.BoundingBox(); ok {
				if shrunk, ok := bb.Intersect(tile); ok {
					tile = shrunk
				}
			}
		}
		boxes = append(boxes, tile)
	}
	return boxes
}

// AdoptGrids installs a topology read from a checkpoint. Owners are
// reassigned deterministically; the persisted assignment is irrelevant since
// the restart job may have a different rank count.
func (h *Hierarchy) AdoptGrids(_ context.Context, boxes [][]domain.Box, _ int) error {
	if len(boxes) == 0 || len(boxes) > h.cfg.MaxDepth+1 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCheckpointFormat, "level count out of range"),
			"levels", len(boxes)),
			"max_depth", h.cfg.MaxDepth)
	}

	grids := make([]domain.Layout, len(boxes))
	for lvl, bl := range boxes {
		level := make([]domain.Box, len(bl))
		copy(level, bl)
		grids[lvl] = h.balance(level)
	}

	h.mu.Lock()
	h.grids = grids
	h.mu.Unlock()
	return nil
}

func (h *Hierarchy) Grids() []domain.Layout {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Layout, len(h.grids))
	for i, l := range h.grids {
		out[i] = l.Clone()
	}
	return out
}

func (h *Hierarchy) Domains() []domain.Box {
	out := make([]domain.Box, len(h.domains))
	copy(out, h.domains)
	return out
}

func (h *Hierarchy) FinestLevel() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.grids) - 1
}

func (h *Hierarchy) MaxDepth() int {
	return h.cfg.MaxDepth
}

func (h *Hierarchy) RefRatios() []int {
	out := make([]int, len(h.cfg.RefRatios))
	copy(out, h.cfg.RefRatios)
	return out
}

func (h *Hierarchy) Dx(level int) float64 {
	return h.dxs[level]
}

func (h *Hierarchy) CoarsestDx() float64 {
	return h.dxs[0]
}

// SanityCheck verifies proper nesting and full level-0 coverage.
func (h *Hierarchy) SanityCheck() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var covered int64
	for _, b := range h.grids[0].Boxes {
		covered += b.NumCells()
	}
	if covered != h.domains[0].NumCells() {
		return zerr.With(zerr.With(zerr.New("level 0 does not cover the domain"),
			"covered", covered),
			"domain", h.domains[0].NumCells())
	}

	for lvl := 1; lvl < len(h.grids); lvl++ {
		ratio := h.cfg.RefRatios[lvl-1]
		coarse := h.grids[lvl-1]
		for _, b := range h.grids[lvl].Boxes {
			cb := b.Coarsen(ratio)
			if coarse.PatchOf(cb.Lo) < 0 || coarse.PatchOf(cb.Hi) < 0 {
				return zerr.With(zerr.New("improper nesting"), "level", lvl)
			}
		}
	}
	return nil
}

var _ ports.MeshHierarchy = (*Hierarchy)(nil)
