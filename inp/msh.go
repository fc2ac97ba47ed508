// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Cell holds a group of vertices coupled by a dense cell matrix
type Cell struct {
	Id    int       `json:"id"`    // id
	Tag   int       `json:"tag"`   // tag
	Verts []int     `json:"verts"` // vertices
	Kmat  []float64 `json:"kmat"`  // [k*neq][k*neq] row-major cell matrix; k = len(Verts). empty => use default

	// derived
	kmat []float64 // cell matrix or default matrix
}

// K returns the cell matrix: (k·neq)×(k·neq) values stored row-major
func (o *Cell) K() []float64 {
	return o.kmat
}

// String returns a JSON representation of cell
func (o *Cell) String() string {
	var buf bytes.Buffer
	io.Ff(&buf, "{\"id\":%d, \"tag\":%d, \"verts\":[", o.Id, o.Tag)
	for i, v := range o.Verts {
		if i > 0 {
			io.Ff(&buf, ",")
		}
		io.Ff(&buf, "%d", v)
	}
	io.Ff(&buf, "]}")
	return buf.String()
}

// postProcess checks cell data and sets the cell matrix
func (o *Cell) postProcess(nverts, neq int, kdefault []float64) (err error) {
	k := len(o.Verts)
	if k < 1 {
		return chk.Err("cell %d has no vertices", o.Id)
	}
	for _, v := range o.Verts {
		if v < 0 || v >= nverts {
			return chk.Err("vertex %d of cell %d is out of range [0, %d)", v, o.Id, nverts)
		}
	}
	if len(utl.IntUnique(o.Verts)) != k {
		return chk.Err("cell %d has repeated vertices: %v", o.Id, o.Verts)
	}
	n := k * neq
	o.kmat = o.Kmat
	if len(o.kmat) == 0 {
		o.kmat = kdefault
	}
	if len(o.kmat) != n*n {
		return chk.Err("cell %d with %d vertices needs a %d×%d matrix; %d values given", o.Id, k, n, n, len(o.kmat))
	}
	return
}
