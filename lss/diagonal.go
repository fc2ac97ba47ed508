// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import "github.com/cpmech/gosl/chk"

// GetDiagonal returns the diagonal of all stored block-rows.
// Order: owned block-rows (as in the communication pattern), then equations.
func (o *Matrix) GetDiagonal() (diag []float64) {
	diag = make([]float64, o.nbrows*o.neq)
	o.eachDiagonal("GetDiagonal", diag, func(d, v *float64) { *d = *v })
	return
}

// SetDiagonal sets the diagonal of all stored block-rows; len(diag) == NumRows()
func (o *Matrix) SetDiagonal(diag []float64) {
	o.eachDiagonal("SetDiagonal", diag, func(d, v *float64) { *v = *d })
}

// AddDiagonal adds diag to the diagonal of all stored block-rows; len(diag) == NumRows()
func (o *Matrix) AddDiagonal(diag []float64) {
	o.eachDiagonal("AddDiagonal", diag, func(d, v *float64) { *v += *d })
}

// eachDiagonal calls fcn with each diagonal entry and the corresponding position in diag
func (o *Matrix) eachDiagonal(method string, diag []float64, fcn func(d, v *float64)) {
	o.checkCreated(method)
	if len(diag) != o.nbrows*o.neq {
		chk.Panic("%s: length of diagonal must be equal to the number of stored rows. %d != %d", method, len(diag), o.nbrows*o.neq)
	}
	n := o.neq
	for m := 0; m < o.nbrows; m++ {
		if o.diag[m] < 0 {
			chk.Panic("%s: block-row %d has no diagonal block", method, o.p2m.M2p[m])
		}
		blk := o.blockAt(m, o.diag[m])
		for i := 0; i < n; i++ {
			fcn(&diag[m*n+i], &blk[i*n+i])
		}
	}
}
