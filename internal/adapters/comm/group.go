package comm

import (
	"context"
	"sync"

	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Group runs size ranks inside one process, one goroutine per rank, and
// implements the collectives by rendezvous. All ranks must call collectives
// in the same order; a rank that skips one deadlocks the rest, exactly like
// the real thing.
type Group struct {
	hub  *hub
	rank int
}

// hub is the shared rendezvous state of one group.
type hub struct {
	size int

	mu      sync.Mutex
	current *round

	abortOnce sync.Once
	aborted   chan struct{}
	abortErr  error
}

// round is one collective in flight. Participants keep their own reference
// so the hub can start the next round before stragglers have read this one.
type round struct {
	vals []any
	n    int
	done chan struct{}
}

// NewGroup creates size connected comms, one per rank.
func NewGroup(size int) []*Group {
	h := &hub{
		size:    size,
		aborted: make(chan struct{}),
	}
	ranks := make([]*Group, size)
	for r := range ranks {
		ranks[r] = &Group{hub: h, rank: r}
	}
	return ranks
}

// Run spawns fn once per rank and waits for all of them. The first error
// cancels the group context for the rest.
func Run(ctx context.Context, size int, fn func(ctx context.Context, c ports.Comm) error) error {
	ranks := NewGroup(size)
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range ranks {
		g.Go(func() error {
			return fn(ctx, c)
		})
	}
	return g.Wait()
}

func (g *Group) Rank() int { return g.rank }
func (g *Group) Size() int { return g.hub.size }

// collect contributes val and blocks until every rank has contributed,
// returning the contributions indexed by rank.
func (g *Group) collect(ctx context.Context, val any) ([]any, error) {
	h := g.hub

	h.mu.Lock()
	r := h.current
	if r == nil {
		r = &round{
			vals: make([]any, h.size),
			done: make(chan struct{}),
		}
		h.current = r
	}
	r.vals[g.rank] = val
	r.n++
	if r.n == h.size {
		h.current = nil
		close(r.done)
	}
	h.mu.Unlock()

	select {
	case <-r.done:
		return r.vals, nil
	case <-h.aborted:
		return nil, zerr.Wrap(h.abortErr, "collective interrupted by abort")
	case <-ctx.Done():
		return nil, zerr.Wrap(ctx.Err(), "collective interrupted")
	}
}

func (g *Group) AllReduceMaxInt(ctx context.Context, v int) (int, error) {
	vals, err := g.collect(ctx, v)
	if err != nil {
		return 0, err
	}
	out := vals[0].(int)
	for _, val := range vals[1:] {
		out = max(out, val.(int))
	}
	return out, nil
}

func (g *Group) AllGatherCells(ctx context.Context, cells []domain.IntVect) ([]domain.IntVect, error) {
	local := make([]domain.IntVect, len(cells))
	copy(local, cells)

	vals, err := g.collect(ctx, local)
	if err != nil {
		return nil, err
	}
	var out []domain.IntVect
	for _, val := range vals {
		out = append(out, val.([]domain.IntVect)...)
	}
	return out, nil
}

func (g *Group) Barrier(ctx context.Context) error {
	_, err := g.collect(ctx, nil)
	return err
}

// Abort releases every rank blocked in a collective. The process is not
// killed; in-process ranks unwind through the error path instead, which is
// what makes aborts testable.
func (g *Group) Abort(err error) {
	h := g.hub
	h.abortOnce.Do(func() {
		h.abortErr = err
		close(h.aborted)
	})
}

var _ ports.Comm = (*Group)(nil)
