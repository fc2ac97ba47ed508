// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Assemble creates the matrix and vectors and adds the contributions of all cells touching
// owned vertices. Cells with ghost vertices contribute to owned block-rows only.
func (o *Main) Assemble() (err error) {

	// create matrix and vectors
	neq := o.Sys.Neq
	err = o.A.Create(o.Cc, o.Pattern, neq, o.Graph.Conn, o.Graph.Starts)
	if err != nil {
		return chk.Err("cannot create matrix:\n%v", err)
	}
	err = o.X.Create(o.Cc, o.Pattern, neq)
	if err != nil {
		return
	}
	err = o.B.Create(o.Cc, o.Pattern, neq)
	if err != nil {
		return
	}
	o.A.Reset(0)

	// cells
	for k, c := range o.Graph.Cells {
		n := len(c.Verts) * neq
		acc := lss.NewBlockAccumulator(len(c.Verts), neq)
		copy(acc.Indices, o.Graph.Lverts[k])
		acc.Mat = mat.NewDense(n, n, append([]float64{}, c.K()...))

		// all block-rows owned
		if o.Graph.AllOwned(k) {
			err = o.A.AddValues(acc)
			if err != nil {
				return chk.Err("cannot add values of cell %d:\n%v", c.Id, err)
			}
			continue
		}

		// owned block-rows only
		for i, irow := range acc.Indices {
			if !o.Graph.Owned[irow] {
				continue
			}
			var w *lss.RowWriter
			w, err = o.A.Begin(lss.SumInto, irow, acc.Indices)
			if err != nil {
				return chk.Err("cannot add values of cell %d:\n%v", c.Id, err)
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
	if o.ShowMsg {
		io.Pforan("matrix assembled: %d cells\n", len(o.Graph.Cells))
	}
	return
}

// SetRhs sets the owned entries of the right-hand side
func (o *Main) SetRhs() (err error) {
	neq := o.Sys.Neq
	for i, v := range o.Graph.Gids {
		if !o.Graph.Owned[i] {
			continue
		}
		for e := 0; e < neq; e++ {
			o.B.SetValue(i*neq+e, o.Sys.Rhs[v*neq+e])
		}
	}
	return
}

// ApplyEbcs replaces the rows of prescribed unknowns owned by this processor
func (o *Main) ApplyEbcs() (err error) {
	neq := o.Sys.Neq
	for _, e := range o.Sys.Ebcs {
		i, ok := o.Graph.G2l[e.Vert]
		if !ok || !o.Graph.Owned[i] {
			continue
		}
		err = o.A.SetRow(i, e.Eq, e.Diag, e.Offdiag)
		if err != nil {
			return chk.Err("cannot set row of vertex %d and equation %d:\n%v", e.Vert, e.Eq, err)
		}
		o.B.SetValue(i*neq+e.Eq, e.Val*e.Diag)
	}
	if o.ShowMsg && len(o.Sys.Ebcs) > 0 {
		io.Pforan("essential boundary conditions applied: %d\n", len(o.Sys.Ebcs))
	}
	return
}

// ApplyTies ties pairs of vertices owned by this processor; the right-hand side of the
// from-vertex is moved to the to-vertex
func (o *Main) ApplyTies() (err error) {
	neq := o.Sys.Neq
	for _, t := range o.Sys.Ties {
		ito, okTo := o.owned(t.To)
		ifrom, okFrom := o.owned(t.From)
		if !okTo && !okFrom {
			continue
		}
		if okTo != okFrom {
			return chk.Err("cannot tie vertices %d and %d: they are owned by different processors", t.To, t.From)
		}
		err = o.A.TieBlockRowPairs(ito, ifrom)
		if err != nil {
			return chk.Err("cannot tie vertices %d and %d:\n%v", t.To, t.From, err)
		}
		for e := 0; e < neq; e++ {
			o.B.AddValue(ito*neq+e, o.B.GetValue(ifrom*neq+e))
			o.B.SetValue(ifrom*neq+e, 0)
		}
	}
	if o.ShowMsg && len(o.Sys.Ties) > 0 {
		io.Pforan("vertices tied: %d\n", len(o.Sys.Ties))
	}
	return
}

// owned returns the local index of vertex v if it is owned by this processor
func (o *Main) owned(v int) (i int, ok bool) {
	i, ok = o.Graph.G2l[v]
	if !ok {
		return -1, false
	}
	return i, o.Graph.Owned[i]
}
