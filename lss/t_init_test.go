// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"sort"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// chainPart returns the communication pattern and adjacency of processor rank for a 1D chain
// of vertices 0-1-2-...; parts holds the owner of each vertex. Local entries are the owned
// vertices and their neighbours, in ascending order of global ids.
func chainPart(parts []int, rank int) (cp *comm.Pattern, conn, starts []int) {
	nverts := len(parts)
	local := make(map[int]bool)
	for v, p := range parts {
		if p != rank {
			continue
		}
		for w := v - 1; w <= v+1; w++ {
			if w >= 0 && w < nverts {
				local[w] = true
			}
		}
	}
	gids := make([]int, 0, len(local))
	for v := range local {
		gids = append(gids, v)
	}
	sort.Ints(gids)
	g2l := make(map[int]int)
	owners := make([]int, len(gids))
	for i, g := range gids {
		g2l[g] = i
		owners[i] = parts[g]
	}
	starts = []int{0}
	for _, g := range gids {
		for w := g - 1; w <= g+1; w++ {
			if j, ok := g2l[w]; ok {
				conn = append(conn, j)
			}
		}
		starts = append(starts, len(conn))
	}
	cp, err := comm.PatternFromOwners(gids, owners, rank)
	if err != nil {
		chk.Panic("%v", err)
	}
	return
}

// serialChain returns a created serial matrix representing a 1D chain with nverts vertices
func serialChain(nverts, neq int) (A *Matrix) {
	cp, conn, starts := chainPart(make([]int, nverts), 0)
	A = NewMatrix("chain")
	err := A.Create(comm.Serial{}, cp, neq, conn, starts)
	if err != nil {
		chk.Panic("%v", err)
	}
	return
}

// full returns a created serial matrix where all n block-rows connect to all block-columns
func full(n, neq int) (A *Matrix) {
	gids := make([]int, n)
	upd := make([]bool, n)
	starts := []int{0}
	var conn []int
	for i := 0; i < n; i++ {
		gids[i], upd[i] = i, true
		for j := 0; j < n; j++ {
			conn = append(conn, j)
		}
		starts = append(starts, len(conn))
	}
	cp, err := comm.NewPattern(gids, upd)
	if err != nil {
		chk.Panic("%v", err)
	}
	A = NewMatrix("full")
	err = A.Create(comm.Serial{}, cp, neq, conn, starts)
	if err != nil {
		chk.Panic("%v", err)
	}
	return
}

// assembleLaplacian adds the cell matrix [[1,-1],[-1,1]] of cells (v, v+1) to the owned rows
// of A; cells touching ghost rows are assembled row by row
func assembleLaplacian(A *Matrix, gids []int) (err error) {
	g2l := make(map[int]int)
	for i, g := range gids {
		g2l[g] = i
	}
	acc := NewBlockAccumulator(2, 1)
	acc.Mat.SetRow(0, []float64{1, -1})
	acc.Mat.SetRow(1, []float64{-1, 1})
	for _, g := range gids {
		a, okA := g2l[g]
		b, okB := g2l[g+1]
		if !okA || !okB {
			continue
		}
		acc.Indices[0], acc.Indices[1] = a, b
		if A.Map().IsOwned(a) && A.Map().IsOwned(b) {
			err = A.AddValues(acc)
			if err != nil {
				return
			}
			continue
		}
		for i, irow := range acc.Indices {
			if !A.Map().IsOwned(irow) {
				continue
			}
			var w *RowWriter
			w, err = A.Begin(SumInto, irow, acc.Indices)
			if err != nil {
				return
			}
			for j := range acc.Indices {
				err = w.Submit(acc.Block(i, j))
				if err != nil {
					return
				}
			}
			err = w.End()
			if err != nil {
				return
			}
		}
	}
	return
}
