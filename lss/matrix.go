// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lss implements distributed block-sparse matrices and vectors for linear systems of
// equations arising from the assembly of finite element and finite volume contributions
package lss

import (
	"math"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
)

// Matrix is a row-partitioned block-sparse matrix. Each processor stores the block-rows it owns;
// each stored block-row holds a fixed list of (column, dense block) pairs with neq×neq blocks.
//
//  Indices given to the methods of Matrix are process-local; i.e. they follow the numbering of
//  the communication pattern used in Create. Scalar indices are given by blockIndex*neq + eq.
//
//  The sparsity pattern is fixed by Create; only values change until Destroy.
type Matrix struct {

	// input
	Name string // name of this matrix; e.g. "system_matrix"

	// communication
	cc  comm.Communicator // communicator
	gid []int             // [nlocal] global ids of process-local entries
	p2m IndexMap          // process-local => matrix indices

	// dimensions
	neq     int // number of equations per block
	nbrows  int // number of stored (owned) block-rows
	nbcols  int // number of block-columns (owned + ghosts)
	nglobal int // number of block-rows over all processors

	// structure
	cols  [][]int       // [nbrows][nblocks] matrix column indices in declaration order
	pos   []map[int]int // [nbrows] matrix column index => position in cols[m]
	start []int         // [nbrows+1] index of first block of each row in vals
	diag  []int         // [nbrows] position of diagonal block in cols[m]; -1 if absent

	// values
	vals []float64 // all blocks, row-major, contiguous

	// status
	created bool
}

// NewMatrix returns a new (not created) matrix
func NewMatrix(name string) (o *Matrix) {
	return &Matrix{Name: name}
}

// TypeName returns the name of this type of matrix
func (o *Matrix) TypeName() string { return "BlockSparseMatrix" }

// Create allocates the matrix structure and zero-valued blocks
//  Input:
//   cc     -- communicator shared by all processors calling Create
//   cp     -- communication pattern of this processor
//   neq    -- number of equations per block; must be equal on all processors
//   conn   -- adjacency (process-local column indices) of all process-local rows
//   starts -- [nlocal+1] row i has columns conn[starts[i]:starts[i+1]]
//  Note: Create is collective; all processors in cc must call it.
//        Only rows owned by this processor are stored; adjacency of ghost rows is ignored.
func (o *Matrix) Create(cc comm.Communicator, cp *comm.Pattern, neq int, conn, starts []int) (err error) {

	// check input
	if cc == nil || cp == nil {
		chk.Panic("communicator and communication pattern must not be nil")
	}
	if neq < 1 {
		chk.Panic("number of equations per block must be at least 1. neq=%d is invalid", neq)
	}
	nlocal := cp.Size()
	if len(starts) != nlocal+1 {
		chk.Panic("size of starts must be equal to number of local entries + 1. %d != %d", len(starts), nlocal+1)
	}
	if o.created {
		o.Destroy()
	}
	o.cc = cc
	o.neq = neq
	err = cp.Validate()
	if err != nil {
		o.finalize()
		o.Destroy()
		return chk.Err("invalid communication pattern:\n%v", err)
	}

	// index map
	o.gid = make([]int, nlocal)
	copy(o.gid, cp.Gids)
	o.p2m.Build(cp.Updatable)
	o.nbrows = o.p2m.Nowned
	o.nbcols = nlocal

	// structure
	o.cols = make([][]int, o.nbrows)
	o.pos = make([]map[int]int, o.nbrows)
	o.start = make([]int, o.nbrows+1)
	o.diag = make([]int, o.nbrows)
	for m := 0; m < o.nbrows; m++ {
		i := o.p2m.M2p[m]
		a, b := starts[i], starts[i+1]
		if a < 0 || b < a || b > len(conn) {
			err = chk.Err("adjacency of row %d is invalid: starts=(%d,%d) and len(conn)=%d", i, a, b, len(conn))
			break
		}
		o.cols[m] = make([]int, 0, b-a)
		o.pos[m] = make(map[int]int, b-a)
		o.diag[m] = -1
		for _, j := range conn[a:b] {
			if j < 0 || j >= nlocal {
				err = chk.Err("column %d of row %d is out of range [0, %d)", j, i, nlocal)
				break
			}
			mcol := o.p2m.P2m[j]
			if _, found := o.pos[m][mcol]; found {
				err = chk.Err("column %d of row %d is repeated", j, i)
				break
			}
			if mcol == m {
				o.diag[m] = len(o.cols[m])
			}
			o.pos[m][mcol] = len(o.cols[m])
			o.cols[m] = append(o.cols[m], mcol)
		}
		if err != nil {
			break
		}
		o.start[m+1] = o.start[m] + len(o.cols[m])
	}

	// finalize; this is collective and must run even if this processor failed
	errfin := o.finalize()
	if err != nil {
		o.Destroy()
		return
	}
	if errfin != nil {
		o.Destroy()
		return errfin
	}

	// allocate blocks
	o.vals = make([]float64, o.start[o.nbrows]*neq*neq)
	o.created = true
	return
}

// finalize reduces dimensions over all processors
func (o *Matrix) finalize() (err error) {
	x := []float64{float64(o.neq), float64(o.neq * o.neq), float64(o.nbrows), 1}
	o.cc.AllReduceSum(x, make([]float64, len(x)))
	sneq, sneq2, nowned, nproc := x[0], x[1], x[2], x[3]
	if math.Abs(sneq*sneq-nproc*sneq2) > 0.5 {
		return chk.Err("number of equations per block must be the same on all processors. neq=%d is inconsistent", o.neq)
	}
	o.nglobal = int(nowned)
	for i, g := range o.gid {
		if g >= o.nglobal {
			return chk.Err("global id %d of local entry %d is not smaller than the number of global block-rows %d", g, i, o.nglobal)
		}
	}
	return
}

// Destroy releases all storage; it can be called many times
func (o *Matrix) Destroy() {
	o.cc = nil
	o.gid = nil
	o.p2m.Clear()
	o.neq, o.nbrows, o.nbcols, o.nglobal = 0, 0, 0, 0
	o.cols, o.pos, o.start, o.diag = nil, nil, nil, nil
	o.vals = nil
	o.created = false
}

// IsCreated tells whether Create was called successfully (and Destroy was not called afterwards)
func (o *Matrix) IsCreated() bool { return o.created }

// Comm returns the communicator given to Create
func (o *Matrix) Comm() comm.Communicator { return o.cc }

// Neq returns the number of equations per block
func (o *Matrix) Neq() int { return o.neq }

// NumBlockRows returns the number of stored (owned) block-rows
func (o *Matrix) NumBlockRows() int { return o.nbrows }

// NumBlockCols returns the number of block-columns (owned + ghosts)
func (o *Matrix) NumBlockCols() int { return o.nbcols }

// NumRows returns the number of scalar rows stored by this processor
func (o *Matrix) NumRows() int { return o.nbrows * o.neq }

// NumCols returns the number of scalar columns seen by this processor
func (o *Matrix) NumCols() int { return o.nbcols * o.neq }

// NumGlobalBlockRows returns the number of block-rows over all processors
func (o *Matrix) NumGlobalBlockRows() int { return o.nglobal }

// NumEntries returns the number of stored scalar entries
func (o *Matrix) NumEntries() int {
	if !o.created {
		return 0
	}
	return len(o.vals)
}

// Map returns the index map of this matrix
func (o *Matrix) Map() *IndexMap { return &o.p2m }

// SetValue sets a scalar entry
//  Input:
//   icol, irow -- process-local scalar indices
func (o *Matrix) SetValue(icol, irow int, value float64) (err error) {
	ptr, err := o.entry(icol, irow)
	if err != nil {
		return
	}
	*ptr = value
	return
}

// AddValue adds value to a scalar entry
func (o *Matrix) AddValue(icol, irow int, value float64) (err error) {
	ptr, err := o.entry(icol, irow)
	if err != nil {
		return
	}
	*ptr += value
	return
}

// GetValue returns a scalar entry
func (o *Matrix) GetValue(icol, irow int) (value float64, err error) {
	ptr, err := o.entry(icol, irow)
	if err != nil {
		return
	}
	return *ptr, nil
}

// Reset sets all stored values to value
func (o *Matrix) Reset(value float64) {
	o.checkCreated("Reset")
	for k := range o.vals {
		o.vals[k] = value
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// checkCreated panics if the matrix is not created
func (o *Matrix) checkCreated(method string) {
	if !o.created {
		chk.Panic("%s: matrix %q must be created first", method, o.Name)
	}
}

// checkEq panics if an equation index is out of range
func (o *Matrix) checkEq(method string, ieq int) {
	if ieq < 0 || ieq >= o.neq {
		chk.Panic("%s: equation index %d is out of range [0, %d)", method, ieq, o.neq)
	}
}

// rowOf returns the matrix row of a process-local block-row; ok is false for ghosts
func (o *Matrix) rowOf(iblockrow int) (m int, ok bool) {
	if iblockrow < 0 || iblockrow >= o.nbcols {
		return -1, false
	}
	m = o.p2m.P2m[iblockrow]
	return m, m < o.nbrows
}

// blockAt returns the values of block k of matrix row m
func (o *Matrix) blockAt(m, k int) []float64 {
	nn := o.neq * o.neq
	b := o.start[m] + k
	return o.vals[b*nn : (b+1)*nn]
}

// block returns the values of block (iblockrow, iblockcol) given as process-local indices
func (o *Matrix) block(iblockrow, iblockcol int) (blk []float64, err error) {
	m, ok := o.rowOf(iblockrow)
	if !ok || iblockcol < 0 || iblockcol >= o.nbcols {
		return nil, &EntryError{iblockrow, iblockcol}
	}
	k, found := o.pos[m][o.p2m.P2m[iblockcol]]
	if !found {
		return nil, &EntryError{iblockrow, iblockcol}
	}
	return o.blockAt(m, k), nil
}

// entry returns a pointer to the scalar entry (icol, irow)
func (o *Matrix) entry(icol, irow int) (ptr *float64, err error) {
	o.checkCreated("entry access")
	n := o.nbcols * o.neq
	if icol < 0 || icol >= n || irow < 0 || irow >= n {
		chk.Panic("scalar indices (col=%d, row=%d) are out of range [0, %d)", icol, irow, n)
	}
	blk, err := o.block(irow/o.neq, icol/o.neq)
	if err != nil {
		return
	}
	return &blk[(irow%o.neq)*o.neq+icol%o.neq], nil
}
