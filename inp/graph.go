// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Graph holds the part of the vertices graph seen by one processor: the vertices it owns plus
// ghost vertices sharing a cell with owned vertices. Local numbering follows ascending global ids.
type Graph struct {
	Rank   int         // processor
	Gids   []int       // [nlocal] global ids of local vertices
	Owned  []bool      // [nlocal] local vertex is owned by Rank
	Starts []int       // [nlocal+1] row i has columns Conn[Starts[i]:Starts[i+1]]
	Conn   []int       // adjacency in local numbering; self included; ascending
	Cells  []*Cell     // cells touching owned vertices
	Lverts [][]int     // [len(Cells)] local vertices of each cell
	G2l    map[int]int // global id => local index
}

// Graph returns the graph of processor rank
func (o *System) Graph(rank int) (g *Graph, err error) {
	if rank < 0 {
		return nil, chk.Err("rank must be non-negative. rank=%d is invalid", rank)
	}

	// cells touching owned vertices
	g = &Graph{Rank: rank}
	var verts []int
	for v, p := range o.Parts {
		if p == rank {
			verts = append(verts, v)
		}
	}
	for _, c := range o.Cells {
		for _, v := range c.Verts {
			if o.Parts[v] == rank {
				g.Cells = append(g.Cells, c)
				verts = append(verts, c.Verts...)
				break
			}
		}
	}

	// local vertices
	g.Gids = utl.IntUnique(verts)
	sort.Ints(g.Gids)
	g.Owned = make([]bool, len(g.Gids))
	g.G2l = make(map[int]int, len(g.Gids))
	for i, v := range g.Gids {
		g.G2l[v] = i
		g.Owned[i] = o.Parts[v] == rank
	}

	// adjacency
	neighs := make(map[int][]int, len(g.Gids))
	for i := range g.Gids {
		utl.IntIntsMapAppend(neighs, i, i)
	}
	g.Lverts = make([][]int, len(g.Cells))
	for k, c := range g.Cells {
		g.Lverts[k] = make([]int, len(c.Verts))
		for j, v := range c.Verts {
			g.Lverts[k][j] = g.G2l[v]
		}
		for _, a := range g.Lverts[k] {
			for _, b := range g.Lverts[k] {
				utl.IntIntsMapAppend(neighs, a, b)
			}
		}
	}
	g.Starts = make([]int, len(g.Gids)+1)
	for i := range g.Gids {
		row := utl.IntUnique(neighs[i])
		sort.Ints(row)
		g.Conn = append(g.Conn, row...)
		g.Starts[i+1] = len(g.Conn)
	}
	return
}

// Pattern returns the communication pattern of this graph
func (o *Graph) Pattern() (*comm.Pattern, error) {
	return comm.NewPattern(o.Gids, o.Owned)
}

// Nowned returns the number of owned vertices
func (o *Graph) Nowned() (n int) {
	for _, owned := range o.Owned {
		if owned {
			n++
		}
	}
	return
}

// AllOwned tells whether all vertices of cell k are owned
func (o *Graph) AllOwned(k int) bool {
	for _, i := range o.Lverts[k] {
		if !o.Owned[i] {
			return false
		}
	}
	return true
}
