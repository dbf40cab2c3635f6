// SPDX-License-Identifier: MIT
// Package: geodome/hub
//
// walk.go — breadth-first traversal over the hub graph.

package hub

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/geodome/geom"
)

const methodWalk = "Walk"

// ErrStartNotFound indicates a walk from an id that is not a hub.
var ErrStartNotFound = errors.New("hub: start id is not a hub")

// VisitFunc is called once per reached hub with its BFS depth. A non-nil
// error aborts the walk.
type VisitFunc func(id geom.PointID, depth int) error

// WalkResult records one traversal.
type WalkResult struct {
	// Order lists hubs in visit order.
	Order []geom.PointID
	// Depth is the strut distance from the start, indexed by id (-1 if unreached).
	Depth []int
}

// Walk visits every hub reachable from start in breadth-first order,
// neighbours in ascending id order. visit may be nil.
func (x *Index) Walk(ctx context.Context, start geom.PointID, visit VisitFunc) (*WalkResult, error) {
	if x.Degree(start) == 0 {
		return nil, fmt.Errorf("%s: id %d: %w", methodWalk, start, ErrStartNotFound)
	}

	res := &WalkResult{
		Order: make([]geom.PointID, 0, x.hubs),
		Depth: make([]int, len(x.adj)),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	queue := make([]geom.PointID, 0, x.hubs)
	queue = append(queue, start)
	res.Depth[start] = 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)
		if visit != nil {
			if err := visit(id, res.Depth[id]); err != nil {
				return nil, fmt.Errorf("%s: visit %d: %w", methodWalk, id, err)
			}
		}

		for _, nbr := range x.adj[id] {
			if res.Depth[nbr] < 0 {
				res.Depth[nbr] = res.Depth[id] + 1
				queue = append(queue, nbr)
			}
		}
	}

	return res, nil
}

// Connected reports whether every hub is reachable from the smallest hub id.
// An empty index is connected.
func (x *Index) Connected() bool {
	ids := x.IDs()
	if len(ids) == 0 {
		return true
	}
	res, err := x.Walk(context.Background(), ids[0], nil)
	return err == nil && len(res.Order) == x.hubs
}
