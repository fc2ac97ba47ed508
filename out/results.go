// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ReadMatrix reads and merges the matrix entries saved by nproc processors
func ReadMatrix(dir, fnkey, enctype string, nproc int) (a *lss.Coo, err error) {
	for proc := 0; proc < nproc; proc++ {
		var c *lss.Coo
		c, err = lss.ReadCoo(dir, fnkey, enctype, proc)
		if err != nil {
			return nil, chk.Err("cannot read matrix entries of processor %d:\n%v", proc, err)
		}
		if a == nil {
			a = &lss.Coo{Nproc: nproc, Neq: c.Neq, N: c.N}
		}
		if c.N != a.N || c.Neq != a.Neq {
			return nil, chk.Err("dimensions of processor %d do not match: N=%d (%d expected) neq=%d (%d expected)", proc, c.N, a.N, c.Neq, a.Neq)
		}
		a.Rows = append(a.Rows, c.Rows...)
		a.Cols = append(a.Cols, c.Cols...)
		a.Vals = append(a.Vals, c.Vals...)
	}
	if a == nil {
		return nil, chk.Err("number of processors must be at least 1. nproc=%d is invalid", nproc)
	}
	return
}

// Sparse returns the matrix as a sparse CSR matrix
func Sparse(a *lss.Coo) *sparse.CSR {
	return sparse.NewCOO(a.N, a.N, a.Rows, a.Cols, a.Vals).ToCSR()
}

// Dense returns the matrix as a dense matrix
func Dense(a *lss.Coo) *mat.Dense {
	d := mat.NewDense(a.N, a.N, nil)
	for k, v := range a.Vals {
		d.Set(a.Rows[k], a.Cols[k], d.At(a.Rows[k], a.Cols[k])+v)
	}
	return d
}

// Residual returns r = A·x - b computed with the loaded results
func Residual() (r []float64) {
	if A == nil || X == nil {
		chk.Panic("LoadResults must be called first and the system must have been solved")
	}
	r = make([]float64, A.N)
	res := mat.NewVecDense(A.N, r)
	res.MulVec(Sparse(A), mat.NewVecDense(A.N, X))
	for i := range r {
		r[i] -= B[i]
	}
	return
}

// GetRes returns the solution at vertex vid and equation eq
func GetRes(vid, eq int) float64 {
	if X == nil {
		chk.Panic("LoadResults must be called first and the system must have been solved")
	}
	return X[vid*Sys.Neq+eq]
}

// GetVerts returns the solution of equation eq at all vertices
func GetVerts(eq int) (vals []float64) {
	vals = make([]float64, Sys.Nverts)
	for vid := range vals {
		vals[vid] = GetRes(vid, eq)
	}
	return
}
