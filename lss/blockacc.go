// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// BlockAccumulator holds the contribution of one element (or group) to the matrix:
// k process-local block indices and a dense (k·neq)×(k·neq) matrix
type BlockAccumulator struct {
	Indices []int      // [k] process-local block indices
	Mat     *mat.Dense // [k*neq][k*neq] values
	neq     int        // number of equations per block
}

// NewBlockAccumulator returns a new accumulator with room for nblocks block indices
func NewBlockAccumulator(nblocks, neq int) (o *BlockAccumulator) {
	if neq < 1 {
		chk.Panic("number of equations per block must be at least 1. neq=%d is invalid", neq)
	}
	o = &BlockAccumulator{neq: neq}
	o.Resize(nblocks)
	return
}

// Resize changes the number of block indices and zeroes all values
func (o *BlockAccumulator) Resize(nblocks int) {
	if nblocks < 1 {
		chk.Panic("number of blocks must be at least 1. nblocks=%d is invalid", nblocks)
	}
	o.Indices = make([]int, nblocks)
	n := nblocks * o.neq
	o.Mat = mat.NewDense(n, n, nil)
}

// Size returns the number of block indices
func (o *BlockAccumulator) Size() int { return len(o.Indices) }

// Neq returns the number of equations per block
func (o *BlockAccumulator) Neq() int { return o.neq }

// Reset zeroes all values
func (o *BlockAccumulator) Reset() {
	o.Mat.Zero()
}

// Block returns a view to the neq×neq block corresponding to positions (i, j) of Indices
func (o *BlockAccumulator) Block(i, j int) mat.Matrix {
	n := o.neq
	return o.Mat.Slice(i*n, (i+1)*n, j*n, (j+1)*n)
}

// SetBlock sets the neq×neq block at positions (i, j) of Indices
func (o *BlockAccumulator) SetBlock(i, j int, blk mat.Matrix) {
	n := o.neq
	r, c := blk.Dims()
	if r != n || c != n {
		chk.Panic("block must be %d×%d. %d×%d is invalid", n, n, r, c)
	}
	o.Mat.Slice(i*n, (i+1)*n, j*n, (j+1)*n).(*mat.Dense).Copy(blk)
}
