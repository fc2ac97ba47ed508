// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Chain implements the solution of -k u'' = f on [0, L] with u(0) = ua and u(L) = ub.
// With linear cells of equal length, the discrete solution coincides with u at the vertices.
//
//   ua                                       ub
//    o-----o-----o-----o-----o- ... -o-----o
//    0     1     2     3     4       n-2   n-1
type Chain struct {

	// input
	L  float64 // length
	K  float64 // conductivity
	F  float64 // source term
	Ua float64 // left value
	Ub float64 // right value
}

// Init initialises this structure
func (o *Chain) Init(prms dbf.Params) {

	// default values
	o.L = 1
	o.K = 1
	o.F = 1
	o.Ua = 0
	o.Ub = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "L":
			o.L = p.V
		case "k":
			o.K = p.V
		case "f":
			o.F = p.V
		case "ua":
			o.Ua = p.V
		case "ub":
			o.Ub = p.V
		}
	}

	// check
	if o.L <= 0 || o.K <= 0 {
		chk.Panic("length and conductivity must be positive. L=%g k=%g are invalid", o.L, o.K)
	}
}

// Solution returns u at x
func (o Chain) Solution(x float64) float64 {
	return o.Ua + (o.Ub-o.Ua)*x/o.L + o.F*x*(o.L-x)/(2*o.K)
}

// Vertices returns u at nverts equally spaced vertices
func (o Chain) Vertices(nverts int) (u []float64) {
	if nverts < 2 {
		chk.Panic("number of vertices must be at least 2. nverts=%d is invalid", nverts)
	}
	u = make([]float64, nverts)
	h := o.L / float64(nverts-1)
	for i := range u {
		u[i] = o.Solution(float64(i) * h)
	}
	return
}

// CellMatrix returns the matrix of a linear cell when nverts vertices are used
func (o Chain) CellMatrix(nverts int) []float64 {
	c := o.K * float64(nverts-1) / o.L
	return []float64{c, -c, -c, c}
}

// Load returns the load at interior vertices when nverts vertices are used
func (o Chain) Load(nverts int) float64 {
	return o.F * o.L / float64(nverts-1)
}
