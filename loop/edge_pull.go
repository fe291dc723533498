// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// edge_pull.go - the free-edge predicate and the pull (detour) step.
//
// Contract:
//   - IsFree and Targets are read-only.
//   - Pull never mutates its input Path; it returns a new one of length len+2.
//   - The detour is oriented like the loop's own occurrence of the edge, so
//     the result stays chained end->start.

package loop

import "fmt"

// IsFree reports whether at least one neighbor of e shares no endpoint with
// any edge of p.
// Complexity: O(d·|p|), d ≤ 2.
func (e Edge) IsFree(p Path) bool {
	for _, n := range e.Neighbors() {
		if !p.Touches(n) {
			return true
		}
	}

	return false
}

// Targets returns the neighbors of e that share no endpoint with p, in
// Neighbors order. These are the legal destinations of a pull.
// Complexity: O(d·|p|).
func (e Edge) Targets(p Path) []Edge {
	var out []Edge
	for _, n := range e.Neighbors() {
		if !p.Touches(n) {
			out = append(out, n)
		}
	}

	return out
}

// Pull deforms p by routing it through a neighbor of e.
//
// Behavior:
//  1. Locate e in p (unordered match); ErrEdgeNotInLoop if absent.
//  2. Collect Targets; ErrPinnedEdge if there are none.
//  3. Draw one target uniformly with src.
//  4. Replace e by start->target.start, target, target.end->end.
//
// All other edges keep their relative order.
// Complexity: O(|p|).
func (e Edge) Pull(p Path, src Source) (Path, error) {
	i := p.IndexOf(e)
	if i < 0 {
		return nil, fmt.Errorf("Pull(%v): %w", e, ErrEdgeNotInLoop)
	}
	base := p[i]

	targets := base.Targets(p)
	if len(targets) == 0 {
		return nil, fmt.Errorf("Pull(%v): %w", e, ErrPinnedEdge)
	}
	target := targets[pickOne(src, len(targets))]

	return p.splice(i, base.detour(target)), nil
}

// detour returns the three edges replacing e when it is pulled onto target.
// target must be one of e's neighbors, so both bridges are unit grid edges
// on the other axis.
func (e Edge) detour(target Edge) []Edge {
	return []Edge{
		{start: e.start, end: target.start, grid: e.grid},
		target,
		{start: target.end, end: e.end, grid: e.grid},
	}
}
