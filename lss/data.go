// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Data returns all stored entries as triplets in global numbering (gid*neq + eq).
// Order: block-rows, columns in declaration order, then equations of row and column.
func (o *Matrix) Data() (rows, cols []int, vals []float64) {
	o.checkCreated("Data")
	nnz := len(o.vals)
	rows = make([]int, 0, nnz)
	cols = make([]int, 0, nnz)
	vals = make([]float64, 0, nnz)
	o.each(func(grow, gcol int, v float64) {
		rows = append(rows, grow)
		cols = append(cols, gcol)
		vals = append(vals, v)
	})
	return
}

// ToTriplet fills a triplet with the stored entries in global numbering. The triplet is
// initialised with dimension NumGlobalBlockRows()*Neq(); this is the part of the global matrix
// held by this processor, as expected by distributed linear solvers.
func (o *Matrix) ToTriplet(t *la.Triplet) {
	o.checkCreated("ToTriplet")
	n := o.nglobal * o.neq
	t.Init(n, n, len(o.vals))
	o.each(func(grow, gcol int, v float64) {
		t.Put(grow, gcol, v)
	})
}

// ToCOO returns the stored entries in global numbering as a sparse COO matrix
func (o *Matrix) ToCOO() *sparse.COO {
	rows, cols, vals := o.Data()
	n := o.nglobal * o.neq
	return sparse.NewCOO(n, n, rows, cols, vals)
}

// MulVec computes y := A·x over the stored rows
//  Input:
//   x -- [NumCols()] process-local scalar numbering (owned and ghost entries)
//  Output:
//   y -- [NumRows()] stored rows; i.e. owned block-rows in the order of the communication pattern
func (o *Matrix) MulVec(y, x []float64) {
	o.checkCreated("MulVec")
	nr, nc := o.nbrows*o.neq, o.nbcols*o.neq
	if len(x) != nc || len(y) != nr {
		chk.Panic("MulVec: lengths of vectors are incorrect. len(x)=%d (%d expected) and len(y)=%d (%d expected)", len(x), nc, len(y), nr)
	}
	if nr == 0 || nc == 0 {
		return
	}
	n := o.neq
	rows := make([]int, 0, len(o.vals))
	cols := make([]int, 0, len(o.vals))
	vals := make([]float64, 0, len(o.vals))
	for m := 0; m < o.nbrows; m++ {
		for k, mcol := range o.cols[m] {
			blk := o.blockAt(m, k)
			jcol := o.p2m.M2p[mcol] * n
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					rows = append(rows, m*n+r)
					cols = append(cols, jcol+c)
					vals = append(vals, blk[r*n+c])
				}
			}
		}
	}
	a := sparse.NewCOO(nr, nc, rows, cols, vals).ToCSR()
	res := mat.NewVecDense(nr, y)
	res.MulVec(a, mat.NewVecDense(nc, x))
}

// each calls fcn for every stored entry in global numbering
func (o *Matrix) each(fcn func(grow, gcol int, v float64)) {
	n := o.neq
	for m := 0; m < o.nbrows; m++ {
		grow := o.gid[o.p2m.M2p[m]] * n
		for k, mcol := range o.cols[m] {
			gcol := o.gid[o.p2m.M2p[mcol]] * n
			blk := o.blockAt(m, k)
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					fcn(grow+r, gcol+c, blk[r*n+c])
				}
			}
		}
	}
}
