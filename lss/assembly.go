// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Mode defines how submitted blocks are combined with stored blocks
type Mode int

const (
	Replace Mode = iota // overwrite stored values
	SumInto             // add to stored values
)

// RowWriter stages blocks for one block-row and commits them with End.
// It is returned by Matrix.Begin; blocks must be submitted in the order of the declared columns.
type RowWriter struct {
	mode   Mode        // Replace or SumInto
	row    int         // process-local block-row
	cols   []int       // declared process-local block-columns
	dest   [][]float64 // stored blocks corresponding to cols
	staged []float64   // submitted values; len = len(cols)*neq*neq
	neq    int         // number of equations per block
	nsub   int         // number of submitted blocks
	done   bool        // End was called
}

// Begin starts writing into block-row iblockrow against the columns icols.
// All (row, column) pairs are resolved here; an absent pair returns an *EntryError and
// nothing is written.
func (o *Matrix) Begin(mode Mode, iblockrow int, icols []int) (w *RowWriter, err error) {
	o.checkCreated("Begin")
	w = &RowWriter{mode: mode, row: iblockrow, neq: o.neq}
	w.cols = make([]int, len(icols))
	copy(w.cols, icols)
	w.dest = make([][]float64, len(icols))
	for k, icol := range icols {
		w.dest[k], err = o.block(iblockrow, icol)
		if err != nil {
			return nil, err
		}
	}
	w.staged = make([]float64, len(icols)*o.neq*o.neq)
	return
}

// Row returns the block-row of this writer
func (o *RowWriter) Row() int { return o.row }

// Submit stages the neq×neq block for the next declared column
func (o *RowWriter) Submit(blk mat.Matrix) (err error) {
	if o.done {
		return chk.Err("cannot submit to block-row %d: writing has already ended", o.row)
	}
	if o.nsub >= len(o.cols) {
		return chk.Err("cannot submit to block-row %d: all %d declared blocks have been submitted", o.row, len(o.cols))
	}
	r, c := blk.Dims()
	if r != o.neq || c != o.neq {
		return chk.Err("block submitted to block-row %d must be %d×%d. %d×%d is invalid", o.row, o.neq, o.neq, r, c)
	}
	s := o.staged[o.nsub*o.neq*o.neq:]
	for i := 0; i < o.neq; i++ {
		for j := 0; j < o.neq; j++ {
			s[i*o.neq+j] = blk.At(i, j)
		}
	}
	o.nsub++
	return
}

// End commits the staged blocks to the matrix
func (o *RowWriter) End() (err error) {
	if o.done {
		return chk.Err("writing to block-row %d has already ended", o.row)
	}
	if o.nsub != len(o.cols) {
		return chk.Err("number of submitted blocks to block-row %d is incorrect. %d != %d", o.row, o.nsub, len(o.cols))
	}
	nn := o.neq * o.neq
	for k, dst := range o.dest {
		src := o.staged[k*nn : (k+1)*nn]
		if o.mode == Replace {
			copy(dst, src)
			continue
		}
		for l, v := range src {
			dst[l] += v
		}
	}
	o.done = true
	return
}

// WriteBlockRow writes a complete block-row in a single call
func (o *Matrix) WriteBlockRow(mode Mode, iblockrow int, icols []int, blks []mat.Matrix) (err error) {
	if len(blks) != len(icols) {
		return chk.Err("number of blocks must be equal to number of columns. %d != %d", len(blks), len(icols))
	}
	w, err := o.Begin(mode, iblockrow, icols)
	if err != nil {
		return
	}
	for _, blk := range blks {
		err = w.Submit(blk)
		if err != nil {
			return
		}
	}
	return w.End()
}

// SetValues replaces the blocks named by the accumulator with its values
func (o *Matrix) SetValues(acc *BlockAccumulator) (err error) {
	return o.putValues(Replace, acc)
}

// AddValues adds the values of the accumulator into the blocks it names
func (o *Matrix) AddValues(acc *BlockAccumulator) (err error) {
	return o.putValues(SumInto, acc)
}

// GetValues fills the accumulator with the stored values of the blocks it names.
// Pairs that are not in the sparsity pattern are set to zero. All indices are checked first;
// the accumulator is not changed if an error is returned.
// Note: this is expensive since each row is completely scanned; use it for diagnostics only.
func (o *Matrix) GetValues(acc *BlockAccumulator) (err error) {
	o.checkCreated("GetValues")
	o.checkAccumulator("GetValues", acc)
	want := make(map[int][]int) // matrix column => positions in acc.Indices
	for j, icol := range acc.Indices {
		if icol < 0 || icol >= o.nbcols {
			return &EntryError{-1, icol}
		}
		mcol := o.p2m.P2m[icol]
		want[mcol] = append(want[mcol], j)
	}
	for _, irow := range acc.Indices {
		if _, ok := o.rowOf(irow); !ok {
			return &EntryError{irow, -1}
		}
	}
	acc.Reset()
	n := o.neq
	for i, irow := range acc.Indices {
		m, _ := o.rowOf(irow)
		for k, mcol := range o.cols[m] {
			js, found := want[mcol]
			if !found {
				continue
			}
			blk := o.blockAt(m, k)
			for _, j := range js {
				for r := 0; r < n; r++ {
					for c := 0; c < n; c++ {
						acc.Mat.Set(i*n+r, j*n+c, blk[r*n+c])
					}
				}
			}
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// putValues begins all rows first so that nothing is written if any pair is absent
func (o *Matrix) putValues(mode Mode, acc *BlockAccumulator) (err error) {
	o.checkCreated("SetValues/AddValues")
	o.checkAccumulator("SetValues/AddValues", acc)
	writers := make([]*RowWriter, len(acc.Indices))
	for i, irow := range acc.Indices {
		writers[i], err = o.Begin(mode, irow, acc.Indices)
		if err != nil {
			return
		}
	}
	for i, w := range writers {
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
	return
}

// checkAccumulator panics if the accumulator is incompatible with this matrix
func (o *Matrix) checkAccumulator(method string, acc *BlockAccumulator) {
	if acc.neq != o.neq {
		chk.Panic("%s: accumulator must have the same number of equations per block as the matrix. %d != %d", method, acc.neq, o.neq)
	}
	r, c := acc.Mat.Dims()
	n := len(acc.Indices) * o.neq
	if r != n || c != n {
		chk.Panic("%s: accumulator matrix must be %d×%d. %d×%d is invalid", method, n, n, r, c)
	}
}
